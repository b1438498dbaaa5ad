package mqtt

import (
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/mverdier/fuelscope/core/store"
	"github.com/mverdier/fuelscope/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT ingestor.
type Config struct {
	Enabled        bool   `json:"enabled"`
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	TelemetryTopic string `json:"telemetry_topic"`
	TankTopic      string `json:"tank_topic"`
	QoS            byte   `json:"qos"`
	LWTTopic       string `json:"lwt_topic"`
	LWTPayload     string `json:"lwt_payload"`
	ConnectTimeout int    `json:"connect_timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "fuelscope"
	}
	if c.TelemetryTopic == "" {
		c.TelemetryTopic = "fleet/+/telemetry"
	}
	if c.TankTopic == "" {
		c.TankTopic = "fleet/+/tank"
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10
	}
}

// Ingestor subscribes to the fleet topics and appends decoded telemetry to
// the store. Malformed payloads are logged and dropped; ingestion never
// stops on bad input.
type Ingestor struct {
	cli paho.Client
	cfg Config
	st  store.Store
	log logger.Logger
}

var newMQTTClient = func(opts *paho.ClientOptions) paho.Client {
	return paho.NewClient(opts)
}

// NewIngestor connects to the broker and subscribes to the telemetry and
// tank configuration topics.
func NewIngestor(cfg Config, st store.Store) (*Ingestor, error) {
	log := logger.New("mqtt_ingestor")
	ing := &Ingestor{cfg: cfg, st: st, log: log}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	opts.ConnectTimeout = time.Duration(cfg.ConnectTimeout) * time.Second
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.LWTTopic != "" {
		opts.SetWill(cfg.LWTTopic, cfg.LWTPayload, cfg.QoS, false)
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(cfg.TelemetryTopic, cfg.QoS, ing.onTelemetry); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe %s: %v", cfg.TelemetryTopic, token.Error())
		}
		if token := c.Subscribe(cfg.TankTopic, cfg.QoS, ing.onTankConfig); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe %s: %v", cfg.TankTopic, token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	ing.cli = c
	return ing, nil
}

func (i *Ingestor) onTelemetry(_ paho.Client, msg paho.Message) {
	p, err := decodePoint(msg.Payload())
	if err != nil {
		i.log.Warnf("drop telemetry on %s: %v", msg.Topic(), err)
		return
	}
	if err := i.st.AddPoint(p); err != nil {
		i.log.Errorf("store point: %v", err)
	}
}

func (i *Ingestor) onTankConfig(_ paho.Client, msg paho.Message) {
	c, err := decodeTankConfig(msg.Payload())
	if err != nil {
		i.log.Warnf("drop tank config on %s: %v", msg.Topic(), err)
		return
	}
	if err := i.st.PutTankConfig(c); err != nil {
		i.log.Errorf("store tank config: %v", err)
	}
}

// Close disconnects from the broker.
func (i *Ingestor) Close() {
	if i.cli != nil {
		i.cli.Disconnect(250)
	}
}
