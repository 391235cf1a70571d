package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julenag/bot/internal/bot"
	intconfig "github.com/julenag/bot/internal/config"
	intdb "github.com/julenag/bot/internal/db"
	"github.com/julenag/bot/internal/dispatcher"
	api "github.com/julenag/bot/internal/http"
	"github.com/julenag/bot/internal/repositories"
	"github.com/julenag/bot/internal/services"
)

const sessionIdleTTL = 30 * time.Minute

func main() {
	env := intconfig.LoadEnv()
	if env.BotToken == "" {
		log.Fatal("BOT_TOKEN no configurado")
	}
	if env.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN no configurado")
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("No se pudo preparar el esquema: %v", err)
	}

	trips := services.TripService{Trips: repositories.TripRequestRepository{DB: db}}
	notifications := services.NotificationService{Notifications: repositories.NotificationRepository{DB: db}}

	engine := bot.NewEngine(trips, sessionIdleTTL)
	tg, err := bot.New(env.BotToken, engine)
	if err != nil {
		log.Fatalf("No se pudo iniciar el bot de Telegram: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disp := dispatcher.Dispatcher{
		Store:    notifications,
		Sender:   tg,
		Interval: env.DispatchInterval,
	}

	go tg.Run(ctx)
	go disp.Run(ctx)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           api.NewRouter(env, db, notifications),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("API escuchando en http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("No se pudo iniciar el servidor HTTP: %v", err)
		}
	}()

	log.Println("🤖 Bot en ejecución...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Apagando...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Apagado del servidor fallido: %v", err)
	}

	log.Println("Bot detenido correctamente.")
}
