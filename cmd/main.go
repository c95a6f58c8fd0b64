package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	appconfig "github.com/fyerfyer/pdf-extract-tool/config"
	"github.com/fyerfyer/pdf-extract-tool/internal/extractor"
	"github.com/fyerfyer/pdf-extract-tool/internal/models"
	"github.com/fyerfyer/pdf-extract-tool/pkg/logger"
	"github.com/fyerfyer/pdf-extract-tool/pkg/storage"
)

// 配置选项
type cliConfig struct {
	ConfigFile  string // 配置文件路径
	LogLevel    string // 日志级别，覆盖配置文件
	OutputDir   string // 输出目录，覆盖配置文件
	OutputName  string // 输出文件名，覆盖配置文件
	Validate    bool   // 提取前是否校验源PDF
	Interactive bool   // 是否强制进入交互模式
}

func main() {
	os.Exit(run())
}

func run() int {
	// 加载.env文件(如果存在)
	_ = godotenv.Load()

	// 解析命令行参数
	cfg := parseFlags()

	// 加载配置文件(如果指定)
	appCfg, err := appconfig.Load(cfg.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// 命令行参数优先于配置文件
	if cfg.LogLevel != "" {
		appCfg.Logging.Level = cfg.LogLevel
	}
	if cfg.OutputDir != "" {
		appCfg.Output.Dir = cfg.OutputDir
	}
	if cfg.Validate {
		appCfg.Extract.Validate = true
	}

	// 初始化日志
	log := logger.New(logger.Config{
		Level:      appCfg.Logging.Level,
		File:       appCfg.Logging.File,
		MaxSize:    appCfg.Logging.MaxSize,
		MaxBackups: appCfg.Logging.MaxBackups,
		MaxAge:     appCfg.Logging.MaxAge,
	})

	// 收集工作单元
	outputName := cfg.OutputName
	if outputName == "" {
		outputName = appCfg.Output.DefaultName
	}

	var pairs []models.Pair
	if cfg.Interactive || flag.NArg() == 0 {
		pairs, outputName = promptPairs(os.Stdin, os.Stdout, outputName)
	} else {
		pairs, err = parsePairArgs(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}

	if len(pairs) == 0 {
		fmt.Fprintln(os.Stderr, "No documents to process.")
		return 1
	}

	// 创建输出文件存储
	store, err := setupStorage(appCfg)
	if err != nil {
		log.Errorf("Failed to initialize storage: %v", err)
		return 1
	}

	// 创建提取服务并执行
	ext := extractor.New(store,
		extractor.WithLogger(log),
		extractor.WithValidation(appCfg.Extract.Validate),
		extractor.WithTempDir(appCfg.Extract.TempDir),
	)

	result, err := ext.Extract(pairs, outputName)
	switch {
	case err == nil:
		fmt.Printf("Extracted pages saved to %s\n", result.OutputPath)
		if skipped := result.Skipped(); skipped > 0 {
			fmt.Printf("Warning: %d of %d documents were skipped.\n", skipped, len(pairs))
		}
		return 0
	case errors.Is(err, models.ErrNoPagesProduced):
		fmt.Println("No valid pages were extracted. No output file created.")
		return 1
	default:
		log.Errorf("Extraction failed: %v", err)
		return 1
	}
}

// parseFlags 解析命令行参数
func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to config file")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	flag.StringVar(&cfg.OutputDir, "output-dir", "", "Output directory")
	flag.StringVar(&cfg.OutputName, "output", "", "Output file name")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate source PDFs before extracting")
	flag.BoolVar(&cfg.Interactive, "interactive", false, "Prompt for inputs interactively")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [path=ranges ...]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Extracts page ranges from PDF files into a single output PDF.\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Example: %s -output merged.pdf a.pdf=1,3-4 b.pdf=2\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

// parsePairArgs 解析 path=ranges 形式的位置参数
func parsePairArgs(args []string) ([]models.Pair, error) {
	pairs := make([]models.Pair, 0, len(args))
	for _, arg := range args {
		path, ranges, ok := strings.Cut(arg, "=")
		if !ok || path == "" || ranges == "" {
			return nil, fmt.Errorf("invalid argument %q, expected path=ranges (e.g., report.pdf=1,3-4)", arg)
		}
		pairs = append(pairs, models.Pair{Path: path, Ranges: ranges})
	}
	return pairs, nil
}

// promptPairs 交互式收集工作单元
// 每个输入只询问一次，无效的输入在提取阶段按单元跳过
func promptPairs(in io.Reader, out io.Writer, defaultName string) ([]models.Pair, string) {
	scanner := bufio.NewScanner(in)
	read := func(prompt string) string {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	count, err := strconv.Atoi(read("How many PDFs do you want to process? "))
	if err != nil || count <= 0 {
		return nil, defaultName
	}

	fmt.Fprintln(out, "Enter the paths of the PDF files:")
	paths := make([]string, count)
	for i := range paths {
		paths[i] = read(fmt.Sprintf("Path to PDF %d: ", i+1))
	}

	fmt.Fprintln(out, "Enter the page ranges to extract from each PDF (e.g., '1,3-4,6-8'):")
	pairs := make([]models.Pair, count)
	for i, path := range paths {
		pairs[i] = models.Pair{
			Path:   path,
			Ranges: read(fmt.Sprintf("Page ranges for PDF %d: ", i+1)),
		}
	}

	name := read(fmt.Sprintf("Enter the name for the output PDF (default is '%s'): ", defaultName))
	if name == "" {
		name = defaultName
	}

	return pairs, name
}

// setupStorage 设置输出文件存储
func setupStorage(cfg *appconfig.Config) (storage.Store, error) {
	switch cfg.Storage.Type {
	case "minio":
		return storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
		})
	case "local", "":
		return storage.NewLocalStore(storage.LocalConfig{Dir: cfg.Output.Dir})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
