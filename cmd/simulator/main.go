package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/config"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

type sample struct {
	category    string
	description string
	wattage     float64
	hours       float64
}

var samples = []sample{
	{"Lighting", "LED Tube 4ft", 18, 10},
	{"Lighting", "CFL Bulb", 23, 8},
	{"Fans", "Ceiling fan", 75, 9},
	{"Air Conditioning", "Split AC 1.5HP", 1500, 8},
	{"Refrigeration", "Chest freezer", 200, 24},
	{"ICT Equipment", "Desktop computer", 150, 8},
	{"Kitchen Equipment", "Microwave", 1200, 0.5},
}

// Publishes simulated field captures for SIM_USER_ID / SIM_AREA_ID so the
// ingestor can be exercised without a device.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	viper.SetDefault("SIM_COUNT", 20)
	userID := viper.GetString("SIM_USER_ID")
	areaID := viper.GetString("SIM_AREA_ID")
	if userID == "" || areaID == "" {
		log.Fatal().Msg("SIM_USER_ID and SIM_AREA_ID must be set")
	}

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < viper.GetInt("SIM_COUNT"); i++ {
		s := samples[rand.Intn(len(samples))]
		c := service.Capture{
			UserID: userID,
			AreaID: areaID,
			Equipment: domain.EquipmentInput{
				Category:    s.category,
				Description: s.description,
				Quantity:    1 + rand.Intn(6),
				WattageW:    s.wattage,
				HoursPerDay: s.hours,
				DaysPerWeek: 5 + rand.Intn(3),
				Condition:   domain.Conditions[rand.Intn(len(domain.Conditions))],
			},
		}
		payload, _ := json.Marshal(c)
		token := client.Publish(config.MQTTEquipmentTopic(), 1, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
