package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/app"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
)

const handleTimeout = 30 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, svcs, err := app.Open(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer db.Close()

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker()).SetClientID("audit-ingestor")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	captures := func(_ mqtt.Client, msg mqtt.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()
		e, err := svcs.Equipment.FromMQTT(ctx, msg.Topic(), msg.Payload())
		if err != nil {
			log.Error().Err(err).Str("topic", msg.Topic()).Msg("capture failed")
			return
		}
		log.Info().Str("equipment_id", e.ID).Msg("capture stored")
	}
	exports := func(_ mqtt.Client, msg mqtt.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()
		out, err := svcs.Reports.FromMQTT(ctx, msg.Topic(), msg.Payload())
		if err != nil {
			log.Error().Err(err).Str("topic", msg.Topic()).Msg("export request failed")
			return
		}
		log.Info().Str("file", out.FileName).Msg("export request served")
	}

	if token := client.Subscribe(config.MQTTEquipmentTopic(), 1, captures); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}
	if token := client.Subscribe(config.MQTTExportTopic(), 1, exports); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("equipment_topic", config.MQTTEquipmentTopic()).Str("export_topic", config.MQTTExportTopic()).
		Msg("ingestor running; Ctrl+C to stop")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("ingestor stopping")
}
