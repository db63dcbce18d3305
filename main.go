package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// cliOptions 命令行参数
type cliOptions struct {
	configPath string
	url        string
	debug      bool

	// print 子命令
	search    string
	sortBy    string
	desc      bool
	xlsxPath  string
	noLogFile bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 根命令：启动交互界面
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Browse a remote dataset catalogue in a sortable, searchable table",
		Long: `Fetches the dataset catalogue once from the configured endpoint and shows it
in a terminal table that can be searched by symbol and sorted by any column.

Examples:
  dataset-browser --url http://localhost:8080/api/datasets
  dataset-browser print --search btc --sort end_date --desc`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLogger()
			return runTUI(config)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigFile, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.url, "url", "", "endpoint URL (overrides config and "+envSourceURL+")")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.noLogFile, "no-log-file", false, "disable the log file")

	rootCmd.AddCommand(newPrintCmd(opts))
	return rootCmd
}

// newPrintCmd print 子命令：加载一次并打印表格
func newPrintCmd(opts *cliOptions) *cobra.Command {
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Fetch once and print the filtered, sorted table to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := setup(opts)
			if err != nil {
				return err
			}
			defer closeLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPrint(ctx, config, opts, cmd.OutOrStdout())
		},
	}

	printCmd.Flags().StringVarP(&opts.search, "search", "s", "", "symbol substring to match (case-insensitive)")
	printCmd.Flags().StringVar(&opts.sortBy, "sort", string(ColStartDate), "sort column: symbol, timeframe, start_date, end_date, file")
	printCmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending")
	printCmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also export the printed rows to this .xlsx file")
	return printCmd
}

// setup 加载配置、应用命令行覆盖并初始化日志
func setup(opts *cliOptions) (Config, error) {
	config, err := loadConfig(opts.configPath)
	if err != nil {
		// 配置问题不致命，使用默认值继续
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	if opts.url != "" {
		config.Source.URL = opts.url
	}
	if opts.debug {
		config.System.DebugMode = true
		config.Log.Level = "debug"
	}

	if !opts.noLogFile {
		if err := InitLogger(config.Log.Dir, parseLogLevel(config.Log.Level)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (file logging disabled)\n", err)
		}
	}

	if config.Source.URL == "" {
		return config, fmt.Errorf("no endpoint configured: set source.url, %s or --url", envSourceURL)
	}

	logInfoDirect("%s starting, source=%s", appName, config.Source.URL)
	return config, nil
}

// closeLogger 退出时刷新日志
func closeLogger() {
	if globalLogger != nil {
		globalLogger.Close()
		globalLogger = nil
	}
}

// runTUI 运行交互界面
func runTUI(config Config) error {
	m := newModel(config, newHTTPClient(config.HTTP))
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logErrorDirect("program exited with error: %v", err)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// runPrint 加载一次，按搜索与排序参数派生视图并打印
// 加载失败不是致命错误：记录日志并打印空表
func runPrint(ctx context.Context, config Config, opts *cliOptions, out io.Writer) error {
	column, ok := parseColumnID(opts.sortBy)
	if !ok {
		return fmt.Errorf("unknown sort column %q", opts.sortBy)
	}

	state := newViewState()
	state.SearchText = opts.search
	state.SortColumn = column
	if opts.desc {
		state.SortDirection = SortDesc
	}

	records, dropped, err := fetchRecords(ctx, newHTTPClient(config.HTTP), config.Source.URL)
	if err != nil {
		logError("log.load.failed", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		state.RawRecords = records
		if dropped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: dropped %d record(s) without a symbol\n", dropped)
		}
	}

	lang := parseLanguage(config.System.Language)
	columns := buildColumnList(config.Display.Columns)
	rows := deriveView(state, loadLocation(config.System.Timezone))
	renderPlainTable(out, lang, config.Display.TableStyle, columns, state, rows)

	if opts.xlsxPath != "" {
		headers := make([]string, len(columns))
		for i, col := range columns {
			headers[i] = lookupText(lang, col.I18nKey)
		}
		if err := exportView(opts.xlsxPath, columns, headers, rows); err != nil {
			logError("log.export.failed", opts.xlsxPath, err)
			return fmt.Errorf("export: %w", err)
		}
		logInfo("log.export.done", len(rows), opts.xlsxPath)
	}
	return nil
}
