package main

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"bt2horizon/internal/config"
	"bt2horizon/internal/database"
	"bt2horizon/internal/middleware"
	"bt2horizon/internal/modules/auth"
	"bt2horizon/internal/modules/bankdetail"
	"bt2horizon/internal/modules/catalog"
	"bt2horizon/internal/modules/chat"
	"bt2horizon/internal/modules/formdraft"
	"bt2horizon/internal/modules/lead"
	"bt2horizon/internal/modules/request"
	"bt2horizon/internal/modules/testimonial"
	"bt2horizon/internal/modules/trip"
	"bt2horizon/internal/modules/upload"
	"bt2horizon/internal/pkg/cache"
	jwtsvc "bt2horizon/internal/pkg/jwt"
	"bt2horizon/internal/pkg/mailer"
	"bt2horizon/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	sqlxDB, err := database.ConnectSQLX(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	chatRepo := repository.NewChatRepository(db)
	tripRepo := repository.NewTripRepository(db)
	formDraftRepo := repository.NewFormDraftRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	bankDetailRepo := repository.NewBankDetailRepository(db)
	requestRepo := repository.NewRequestRepository(sqlxDB)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	mail := mailer.NewSMTP(cfg.SMTP)
	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	hub := chat.NewHub()
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo, redisCache))
	leadHandler := lead.NewHandler(lead.NewService(requestRepo, mail))
	requestHandler := request.NewHandler(request.NewService(requestRepo))
	chatHandler := chat.NewHandler(chat.NewService(chatRepo, hub), hub)
	tripHandler := trip.NewHandler(trip.NewService(tripRepo, requestRepo, mail))
	formDraftHandler := formdraft.NewHandler(formdraft.NewService(formDraftRepo))
	testimonialHandler := testimonial.NewHandler(testimonial.NewService(testimonialRepo))
	bankDetailHandler := bankdetail.NewHandler(bankdetail.NewService(bankDetailRepo))
	uploadHandler := upload.NewHandler(upload.NewService(cfg.UploadDir, cfg.StaticURLBase, saveUploadedFile))

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.Static(cfg.StaticURLBase, cfg.UploadDir)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(j))
	{
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		leadHandler.RegisterPublicRoutes(api)
		requestHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		tripHandler.RegisterRoutes(api)
		formDraftHandler.RegisterRoutes(api)
		testimonialHandler.RegisterRoutes(api)
		bankDetailHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			requestHandler.RegisterProtectedRoutes(protected)
		}

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin(j, cfg.AdminKey))
		{
			authHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			requestHandler.RegisterAdminRoutes(admin)
			chatHandler.RegisterAdminRoutes(admin)
			tripHandler.RegisterAdminRoutes(admin)
			testimonialHandler.RegisterAdminRoutes(admin)
			bankDetailHandler.RegisterAdminRoutes(admin)
			uploadHandler.RegisterAdminRoutes(admin)
		}
	}

	// API callers get a JSON 404; browsers that land on the backend are
	// sent to the frontend.
	r.NoRoute(func(c *gin.Context) {
		if wantsJSON(c) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Redirect(http.StatusFound, cfg.FrontendURL)
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// wantsJSON decides whether the caller is an API client: anything
// under /api, or any request that accepts JSON.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") || accept == "" || accept == "*/*"
}

// saveUploadedFile copies a multipart upload to disk; it matches the
// signature the upload service expects.
func saveUploadedFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
