package main

import (
	"context"
	"flag"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

func main() {
	file := flag.String("file", "", "arquivo CSV com os registros mensais")
	createSchema := flag.Bool("create-schema", false, "cria as tabelas que não existem antes de inserir; períodos já cadastrados são reaproveitados pelo (anio, mes)")
	dryRun := flag.Bool("dry-run", false, "apenas lê o CSV e mostra os registros")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga dos registros mensais...")

	if *file == "" {
		logrus.Fatal("Informe o arquivo CSV com -file")
	}

	startTime := time.Now()
	records, err := migration.LoadCSV(*file)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o arquivo CSV")
	}
	logrus.WithField("records", len(records)).Info("Arquivo CSV lido com sucesso")

	if *dryRun {
		logrus.Info(utils.PrettyJson(records))
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	seeder := migration.NewSeeder(conn, cfg.Database.Driver)

	if *createSchema {
		if err := seeder.CreateSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar o schema")
		}
		logrus.Info("Schema criado com sucesso")
	}

	bar := progressbar.Default(int64(len(records)), "inserindo registros")
	err = seeder.Seed(ctx, records, func() {
		_ = bar.Add(1)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir os registros, transação desfeita")
	}

	logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Info("Carga concluída com sucesso")
}
