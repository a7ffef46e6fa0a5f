// cmd/container.go
//
// Composition root. Owns infrastructure (file storage, OCR providers, model
// backends) and wires the processing pipeline. This is the only place that
// knows about ALL modules.
package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quizforge/quizforge/pkg/ai/providers/aianthropic"
	"github.com/quizforge/quizforge/pkg/ai/providers/aigemini"
	"github.com/quizforge/quizforge/pkg/ai/providers/aiopenai"
	"github.com/quizforge/quizforge/pkg/config"
	"github.com/quizforge/quizforge/pkg/extract"
	"github.com/quizforge/quizforge/pkg/fsx"
	"github.com/quizforge/quizforge/pkg/fsx/fsxlocal"
	"github.com/quizforge/quizforge/pkg/fsx/fsxs3"
	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/genx/genxheuristic"
	"github.com/quizforge/quizforge/pkg/genx/genxllm"
	"github.com/quizforge/quizforge/pkg/logx"
	"github.com/quizforge/quizforge/pkg/notifx"
	"github.com/quizforge/quizforge/pkg/notifx/notifxhttp"
	"github.com/quizforge/quizforge/pkg/notifx/notifxlog"
	"github.com/quizforge/quizforge/pkg/ocrx"
	"github.com/quizforge/quizforge/pkg/ocrx/ocrxremote"
	"github.com/quizforge/quizforge/pkg/ocrx/ocrxtesseract"
	"github.com/quizforge/quizforge/pkg/pipeline"
)

// Container holds shared infrastructure and the composed pipeline.
type Container struct {
	Config *config.Config

	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	OCRChain        *ocrx.Chain
	GeneratorChain  *genx.Chain
	Notifier        notifx.Notifier
	PipelineService *pipeline.Service

	PipelineHandlers *pipeline.Handlers
}

func NewContainer(cfg *config.Config) *Container {
	logx.Info("initializing application container")

	c := &Container{Config: cfg}

	c.initFileStorage()
	c.initOCRChain()
	c.initGeneratorChain()
	c.initNotifier()
	c.initPipeline()

	logx.Info("application container initialized")
	return c
}

func (c *Container) initFileStorage() {
	switch c.Config.Storage.Mode {
	case "s3":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
			awsConfig.WithRegion(c.Config.Storage.AWSRegion))
		if err != nil {
			logx.Fatalf("unable to load AWS SDK config: %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.AWSBucket, "")
		logx.Infof("S3 file system configured (bucket: %s, region: %s)",
			c.Config.Storage.AWSBucket, c.Config.Storage.AWSRegion)

	case "local":
		localFS, err := fsxlocal.NewLocalFileSystem(c.Config.Storage.LocalBasePath)
		if err != nil {
			logx.Fatalf("failed to initialize local file system: %v", err)
		}
		c.FileSystem = localFS
		logx.Infof("local file system configured (path: %s)", localFS.GetBasePath())

	default:
		logx.Fatalf("unknown STORAGE_MODE: %s (use 'local' or 's3')", c.Config.Storage.Mode)
	}
}

func (c *Container) initOCRChain() {
	ocrCfg := c.Config.OCR

	providers := []ocrx.Provider{
		ocrxtesseract.New(ocrCfg.TesseractPath),
		ocrxremote.NewOCRSpace(ocrCfg.OCRSpaceAPIKey, ocrCfg.OCRSpaceMaxBytes, ocrCfg.OCRSpaceTimeout),
		ocrxremote.NewBearer("t3xtr", ocrCfg.T3xtr.URL, ocrCfg.T3xtr.APIKey, ocrCfg.T3xtr.Timeout),
		ocrxremote.NewBearer("apdf", ocrCfg.APDF.URL, ocrCfg.APDF.APIKey, ocrCfg.APDF.Timeout),
		ocrxremote.NewBearer("textmill", ocrCfg.TextMill.URL, ocrCfg.TextMill.APIKey, ocrCfg.TextMill.Timeout),
		ocrxremote.NewZamzar(ocrCfg.Zamzar.URL, ocrCfg.Zamzar.APIKey, ocrCfg.Zamzar.Timeout),
	}

	c.OCRChain = ocrx.NewChain(providers, ocrCfg.Chain)

	enabled := 0
	for _, p := range providers {
		if p.Enabled() {
			enabled++
		}
	}
	logx.Infof("OCR chain configured (%d of %d providers enabled)", enabled, len(providers))
}

func (c *Container) initGeneratorChain() {
	genCfg := c.Config.Generation
	var generators []genx.Generator

	if genCfg.GeminiAPIKey != "" {
		provider, err := aigemini.NewGeminiProvider(context.Background(), genCfg.GeminiAPIKey)
		if err != nil {
			logx.Errorf("gemini backend unavailable: %v", err)
		} else {
			generators = append(generators,
				genxllm.New("gemini", provider, genCfg.GeminiModel,
					genCfg.QuestionCount, genCfg.MaxPromptChars, genCfg.RequestTimeout))
			logx.Info("gemini generator registered")
		}
	}

	if genCfg.OpenAIAPIKey != "" || genCfg.OpenAIBaseURL != "" {
		provider := aiopenai.NewOpenAIProvider(genCfg.OpenAIAPIKey, genCfg.OpenAIBaseURL)
		generators = append(generators,
			genxllm.New("openai", provider, genCfg.OpenAIModel,
				genCfg.QuestionCount, genCfg.MaxPromptChars, genCfg.RequestTimeout))
		logx.Info("openai-compatible generator registered")
	}

	if genCfg.AnthropicAPIKey != "" {
		provider := aianthropic.NewAnthropicProvider(genCfg.AnthropicAPIKey)
		generators = append(generators,
			genxllm.New("anthropic", provider, genCfg.AnthropicModel,
				genCfg.QuestionCount, genCfg.MaxPromptChars, genCfg.RequestTimeout))
		logx.Info("anthropic generator registered")
	}

	// The heuristic tier closes the chain so usable text always yields
	// questions, even with no model backend configured.
	generators = append(generators, genxheuristic.New(genCfg.HeuristicQuestionCount))

	c.GeneratorChain = genx.NewChain(generators...)
	logx.Infof("generator chain configured (%d tiers)", len(generators))
}

func (c *Container) initNotifier() {
	notifyCfg := c.Config.Notify

	if notifyCfg.Disabled {
		c.Notifier = notifxlog.New()
		logx.Warn("callbacks disabled, notifications are log-only")
		return
	}

	c.Notifier = notifxhttp.New(notifxhttp.Config{
		ProgressURLTemplate: notifyCfg.ProgressURLTemplate,
		CallbackURLTemplate: notifyCfg.CallbackURLTemplate,
		Secret:              notifyCfg.Secret,
		Attempts:            notifyCfg.Attempts,
		RetryDelay:          notifyCfg.RetryDelay,
		ProgressTimeout:     notifyCfg.ProgressTimeout,
		ResultTimeout:       notifyCfg.ResultTimeout,
	})
	logx.Info("HTTP notifier configured")
}

func (c *Container) initPipeline() {
	extractor := extract.New(c.Config.Pipeline.MinDirectTextChars)

	c.PipelineService = pipeline.New(
		c.FileSystem,
		extractor,
		c.OCRChain,
		c.GeneratorChain,
		c.Notifier,
		c.Config.Pipeline.TempDir,
	)
	c.PipelineHandlers = pipeline.NewHandlers(c.PipelineService, c.Config.Notify.Secret)
	logx.Info("pipeline wired")
}

func (c *Container) Cleanup() {
	logx.Info("cleaning up resources")
}
