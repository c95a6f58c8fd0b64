package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"

	"github.com/fyerfyer/pdf-extract-tool/internal/models"
	"github.com/fyerfyer/pdf-extract-tool/internal/pagerange"
	"github.com/fyerfyer/pdf-extract-tool/pkg/storage"
)

// Extractor PDF页面提取服务
// 负责协调页码解析、页面复制和输出合并
type Extractor struct {
	store    storage.Store        // 输出文件存储
	validate bool                 // 提取前是否校验源PDF
	tempDir  string               // 临时工作目录，为空时使用系统默认
	conf     *model.Configuration // pdfcpu配置
	logger   *logrus.Logger       // 日志记录器
}

// Option 提取服务配置选项
type Option func(*Extractor)

// New 创建提取服务
func New(store storage.Store, opts ...Option) *Extractor {
	e := &Extractor{
		store:  store,
		conf:   model.NewDefaultConfiguration(),
		logger: logrus.New(), // 默认日志记录器
	}

	// 应用配置选项
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithLogger 设置日志记录器
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithValidation 设置提取前是否校验源PDF
func WithValidation(enabled bool) Option {
	return func(e *Extractor) {
		e.validate = enabled
	}
}

// WithTempDir 设置临时工作目录
func WithTempDir(dir string) Option {
	return func(e *Extractor) {
		e.tempDir = dir
	}
}

// Extract 按顺序处理每个工作单元，将选中的页面合并为一个输出PDF
// 单个工作单元失败只跳过该单元，不中断整体运行
// 所有单元都被跳过时不写任何输出，返回models.ErrNoPagesProduced
func (e *Extractor) Extract(pairs []models.Pair, destName string) (*models.Result, error) {
	result := &models.Result{
		Reports: make([]models.PairReport, 0, len(pairs)),
	}

	// 每次运行使用独立的临时工作目录
	workDir, err := e.makeWorkDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	// 逐个处理工作单元，每个单元产出一个只含选中页面的部分文件
	var parts []string
	for i, pair := range pairs {
		part := filepath.Join(workDir, fmt.Sprintf("part-%03d.pdf", i))

		pages, err := e.collectPair(pair, part)
		if err != nil {
			e.logger.WithFields(logrus.Fields{
				"path":   pair.Path,
				"ranges": pair.Ranges,
				"error":  err.Error(),
			}).Warn("Skipping document")
			result.Reports = append(result.Reports, models.PairReport{Pair: pair, Err: err})
			continue
		}

		parts = append(parts, part)
		result.Reports = append(result.Reports, models.PairReport{Pair: pair, Pages: pages})
	}

	// 所有工作单元都被跳过，属于正常的终止状态，不产生输出文件
	if len(parts) == 0 {
		e.logger.Info("No valid pages were extracted, no output file created")
		return result, models.ErrNoPagesProduced
	}

	// 按文档顺序合并所有部分文件
	merged := filepath.Join(workDir, "merged.pdf")
	if err := api.MergeCreateFile(parts, merged, false, e.conf); err != nil {
		return result, fmt.Errorf("%w: failed to merge pages: %v", models.ErrDestinationUnwritable, err)
	}

	// 通过存储层持久化输出文件
	name := NormalizeName(destName)
	file, err := os.Open(merged)
	if err != nil {
		return result, fmt.Errorf("%w: %v", models.ErrDestinationUnwritable, err)
	}
	defer file.Close()

	info, err := e.store.Save(file, name)
	if err != nil {
		return result, fmt.Errorf("%w: %v", models.ErrDestinationUnwritable, err)
	}

	result.Written = true
	result.OutputPath = info.Path

	e.logger.WithFields(logrus.Fields{
		"path":    info.Path,
		"pages":   result.PagesWritten(),
		"skipped": result.Skipped(),
	}).Info("Extracted pages saved")

	return result, nil
}

// collectPair 处理单个工作单元：读取页数、解析页码范围并复制选中的页面
// 返回复制的页数
func (e *Extractor) collectPair(pair models.Pair, outFile string) (int, error) {
	if e.validate {
		if err := api.ValidateFile(pair.Path, e.conf); err != nil {
			return 0, fmt.Errorf("%w: %v", models.ErrSourceUnreadable, err)
		}
	}

	maxPages, err := api.PageCountFile(pair.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrSourceUnreadable, err)
	}

	pages, err := pagerange.Parse(pair.Ranges, maxPages)
	if err != nil {
		return 0, err
	}

	selected := make([]string, len(pages))
	for i, page := range pages {
		selected[i] = strconv.Itoa(page)
	}

	// CollectFile按给定顺序复制页面，pages已经是升序
	if err := api.CollectFile(pair.Path, outFile, selected, e.conf); err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrSourceUnreadable, err)
	}

	return len(pages), nil
}

// makeWorkDir 创建本次运行的临时工作目录
func (e *Extractor) makeWorkDir() (string, error) {
	base := e.tempDir
	if base == "" {
		base = os.TempDir()
	}

	workDir := filepath.Join(base, "pdf-extract-"+uuid.New().String())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp workspace: %v", err)
	}

	return workDir, nil
}

// NormalizeName 补全输出文件名的.pdf扩展名
// 空文件名回退到默认的output.pdf
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "output.pdf"
	}
	if strings.ToLower(filepath.Ext(name)) != ".pdf" {
		return name + ".pdf"
	}
	return name
}
