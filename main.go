package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"medivance-backend/auth"
	"medivance-backend/carousel"
	"medivance-backend/catalog"
	"medivance-backend/company"
	"medivance-backend/config"
	"medivance-backend/controllers"
	"medivance-backend/events"
	"medivance-backend/export"
	"medivance-backend/ids"
	"medivance-backend/logger"
	"medivance-backend/media"
	"medivance-backend/messages"
	"medivance-backend/notify"
	"medivance-backend/routes"
	"medivance-backend/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(logger.Options{Mode: cfg.Env, Filename: cfg.LogFile})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.L().Fatal("server stopped with error", zap.Error(err))
	}
	zap.L().Info("server stopped")
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Setup(a.ctrl, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("server is running", zap.String("port", cfg.Port), zap.String("store", cfg.StoreMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zap.L().Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// app holds the wired controller and the resources released on shutdown, last opened first.
type app struct {
	ctrl    *controllers.Controller
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newApp(ctx context.Context, cfg *config.AppConfig) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	idGen, err := ids.NewSnowflake(1)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	for _, e := range []events.Event{
		catalog.ProductCreated{}, catalog.ProductUpdated{}, catalog.ProductDeleted{},
		messages.MessageReceived{}, messages.MessageReplied{}, messages.MessageDeleted{},
	} {
		if err := bus.Subscribe(e.Type(), audit); err != nil {
			return nil, err
		}
	}

	data, err := seed.Load()
	if err != nil {
		return nil, err
	}

	// Inisialisasi storage
	ctrl := &controllers.Controller{StoreMode: cfg.StoreMode}
	var (
		productRepo catalog.Repository  = catalog.NewMemoryRepository()
		messageRepo messages.Repository = messages.NewMemoryRepository()
	)
	ctrl.Company = company.NewStore(idGen, data.Company)
	if cfg.StoreMode == config.StoreMongo {
		client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		})
		ctrl.DB = client.Database(cfg.MongoDatabase)
		if err := config.EnsureIndexes(ctx, ctrl.DB); err != nil {
			return nil, err
		}
		productRepo = catalog.NewMongoRepository(ctrl.DB)
		messageRepo = messages.NewMongoRepository(ctrl.DB)
		if err := ctrl.Company.Attach(ctx, company.NewMongoSnapshotter(ctrl.DB)); err != nil {
			return nil, err
		}
	}

	// Mailer untuk balasan admin
	var mailer messages.Mailer = notify.NewLogMailer(zap.L())
	if cfg.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	}

	// Inisialisasi Cloudinary
	ctrl.Uploader = media.Disabled{}
	if cfg.CloudinaryURL != "" {
		cld, err := media.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			return nil, err
		}
		ctrl.Uploader = cld
	}

	ctrl.Auth, err = auth.New(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.PasetoSecretKey)
	if err != nil {
		return nil, err
	}

	ctrl.Catalog = catalog.NewService(productRepo, idGen, bus)
	if err := ctrl.Catalog.Seed(ctx, data.Products); err != nil {
		return nil, err
	}
	ctrl.Messages = messages.NewService(messageRepo, idGen, bus, mailer)
	if err := ctrl.Messages.Seed(ctx, data.Messages); err != nil {
		return nil, err
	}

	ctrl.Carousel, err = newCarousel(len(data.Featured), cfg.CarouselInterval)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, ctrl.Carousel.Close)

	ctrl.Featured = data.Featured
	ctrl.Sheets = notify.NewSheetsClient(cfg.SheetsWebAppURL, cfg.SheetsToken)
	ctrl.Branding = export.NewBranding(cfg.CompanyName)
	a.ctrl = ctrl
	return a, nil
}

// newCarousel builds the featured slide scheduler. It starts playing, like the home page hero.
func newCarousel(slides int, interval time.Duration) (*carousel.Scheduler, error) {
	scheduler, err := carousel.New(slides, interval)
	if err != nil {
		return nil, err
	}
	scheduler.OnAdvance(func(st carousel.State) {
		zap.L().Debug("featured slide advanced", zap.Int("index", st.CurrentIndex))
	})
	if err := scheduler.Start(); err != nil {
		scheduler.Close()
		return nil, err
	}
	return scheduler, nil
}

func audit(e events.Event) {
	zap.L().Info("domain event", zap.String("event", e.Type()), zap.Any("payload", e))
}
