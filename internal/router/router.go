package router

import (
	"database/sql"
	"net/http"

	_ "vet-clinic-ledger/docs"
	mem "vet-clinic-ledger/internal/adapters/storage/memory"
	pg "vet-clinic-ledger/internal/adapters/storage/postgres"
	lite "vet-clinic-ledger/internal/adapters/storage/sqlite"
	"vet-clinic-ledger/internal/domain/billing"
	"vet-clinic-ledger/internal/domain/intake"
	"vet-clinic-ledger/internal/domain/invoices"
	"vet-clinic-ledger/internal/domain/petstatus"
	"vet-clinic-ledger/internal/domain/treatments"
	"vet-clinic-ledger/internal/middleware"
	"vet-clinic-ledger/internal/platform/config"
	"vet-clinic-ledger/internal/platform/logger"
	"vet-clinic-ledger/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Storage elige los repos. sqlite y postgres necesitan DB abierta;
	// sin DB se usa in-memory.
	Storage config.Storage
	DB      *sql.DB

	// Registry propio para /metrics. Si es nil se crea uno.
	Registry *prometheus.Registry
}

type repos struct {
	invoices   invoices.Repository
	treatments treatments.Repository
	petStatus  petstatus.Repository
	intake     intake.Repository
}

func selectRepos(opts Options) repos {
	switch {
	case opts.DB != nil && opts.Storage == config.StoragePostgres:
		return repos{
			invoices:   pg.NewInvoicesRepo(opts.DB),
			treatments: pg.NewTreatmentsRepo(opts.DB),
			petStatus:  pg.NewPetStatusRepo(opts.DB),
			intake:     pg.NewIntakeRepo(opts.DB),
		}
	case opts.DB != nil:
		return repos{
			invoices:   lite.NewInvoicesRepo(opts.DB),
			treatments: lite.NewTreatmentsRepo(opts.DB),
			petStatus:  lite.NewPetStatusRepo(opts.DB),
			intake:     lite.NewIntakeRepo(opts.DB),
		}
	default:
		return repos{
			invoices:   mem.NewInvoiceRepo(),
			treatments: mem.NewTreatmentRepo(),
			petStatus:  mem.NewPetStatusRepo(),
			intake:     mem.NewIntakeRepo(),
		}
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m := metrics.New(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := selectRepos(opts)

	// Services por módulo
	invoicesSvc := invoices.NewService(rp.invoices, m)
	reconciler := billing.NewReconciler(rp.treatments, invoicesSvc, log.With(map[string]any{"module": "billing"}), m)
	treatmentsSvc := treatments.NewService(rp.treatments, reconciler, m)
	petStatusSvc := petstatus.NewService(rp.petStatus, reconciler, m)
	processor := intake.NewProcessor(rp.intake, log.With(map[string]any{"module": "intake"}), m, invoicesSvc)

	// Rutas por módulo
	intake.RegisterRoutes(r, processor)
	treatments.RegisterRoutes(r, treatmentsSvc)
	petstatus.RegisterRoutes(r, petStatusSvc)
	billing.RegisterRoutes(r, reconciler)
	invoices.RegisterRoutes(r, invoicesSvc)

	return r
}
