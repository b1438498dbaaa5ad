package simulator

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/mverdier/fuelscope/core/model"
)

// Publisher pushes generated telemetry to an MQTT broker on the same
// topics the ingestor subscribes to.
type Publisher struct {
	cli paho.Client
}

var newMQTTClient = func(broker, clientID string) (paho.Client, error) {
	opts := paho.NewClientOptions().AddBroker(broker).SetClientID(clientID)
	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return cli, nil
}

// NewPublisher connects to the broker.
func NewPublisher(broker string) (*Publisher, error) {
	cli, err := newMQTTClient(broker, "fuelscope-sim")
	if err != nil {
		return nil, err
	}
	return &Publisher{cli: cli}, nil
}

// Publish sends every tank configuration and telemetry point of the fleet.
func (p *Publisher) Publish(f *Fleet) error {
	for _, c := range f.TankConfigs() {
		payload, err := json.Marshal(map[string]any{
			"vehicle_id":        c.VehicleID,
			"primary_capacity":  c.PrimaryCapacity,
			"primary_fuel_type": c.PrimaryFuelType,
		})
		if err != nil {
			return err
		}
		topic := fmt.Sprintf("fleet/%s/tank", c.VehicleID)
		if token := p.cli.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
			return token.Error()
		}
	}
	for _, pt := range f.Generate() {
		payload, err := json.Marshal(pointMessage(pt))
		if err != nil {
			return err
		}
		topic := fmt.Sprintf("fleet/%s/telemetry", pt.VehicleID)
		if token := p.cli.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
			return token.Error()
		}
	}
	return nil
}

func pointMessage(p model.TelemetryPoint) map[string]any {
	m := map[string]any{
		"vehicle_id": p.VehicleID,
		"odometer":   p.Odometer,
		"timestamp":  p.Timestamp,
		"kind":       p.Kind.String(),
	}
	if p.FillFraction != nil {
		m["fill_fraction"] = *p.FillFraction
	}
	if p.FillVolume != nil {
		m["fill_volume"] = *p.FillVolume
	}
	if p.FilledToFull != nil {
		m["filled_to_full"] = *p.FilledToFull
	}
	if p.Tank != nil {
		m["tank"] = p.Tank.String()
	}
	return m
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.cli != nil {
		p.cli.Disconnect(250)
	}
}
