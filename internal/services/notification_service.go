package services

import (
	"encoding/json"
	"time"

	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Event types and stream published by the core.
const (
	EventCompteCreated      = "compte.created"
	EventClientNotification = "client.notification"

	CompteEventsStream = "compte.events"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// ClientWelcomeEvent carries the credentials the notification collaborator
// needs to deliver the welcome email and SMS.
type ClientWelcomeEvent struct {
	ClientID  string `json:"clientId"`
	Titulaire string `json:"titulaire"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Password  string `json:"password"`
	Code      string `json:"code"`
}

type CompteCreatedEvent struct {
	CompteID     string `json:"compteId"`
	NumeroCompte string `json:"numeroCompte"`
	ClientID     string `json:"clientId"`
	TypeCompte   string `json:"type"`
}

// Notifier is the boundary to the notification collaborator. Delivery is
// at-most-once; implementations must not be relied on for retries.
type Notifier interface {
	NotifyNewClient(client *models.Client, password, code string) error
	NotifyCompteCreated(compte *models.Compte) error
}

// EventNotifier publishes domain events onto a redis stream for the external
// delivery workers. With no redis configured it degrades to logging only.
type EventNotifier struct{}

func (EventNotifier) NotifyNewClient(client *models.Client, password, code string) error {
	return publishEvent(EventClientNotification, ClientWelcomeEvent{
		ClientID:  client.ID,
		Titulaire: client.Titulaire,
		Email:     client.Email,
		Telephone: client.Telephone,
		Password:  password,
		Code:      code,
	})
}

func (EventNotifier) NotifyCompteCreated(compte *models.Compte) error {
	return publishEvent(EventCompteCreated, CompteCreatedEvent{
		CompteID:     compte.ID,
		NumeroCompte: compte.NumeroCompte,
		ClientID:     compte.ClientID,
		TypeCompte:   string(compte.TypeCompte),
	})
}

func publishEvent(eventType string, data interface{}) error {
	if database.RedisClient == nil {
		zap.L().Info("event published (no redis, log only)", zap.String("type", eventType))
		return nil
	}

	payload, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return err
	}

	return database.RedisClient.XAdd(database.Ctx, &redis.XAddArgs{
		Stream: CompteEventsStream,
		Values: map[string]interface{}{"event": payload},
	}).Err()
}

// ActiveNotifier is the notifier used by the services. Tests swap in a fake.
var ActiveNotifier Notifier = EventNotifier{}

// dispatchWelcome is fire-and-forget: delivery failures are logged and
// swallowed so they can never abort client creation.
func dispatchWelcome(client *models.Client, password, code string) {
	if err := ActiveNotifier.NotifyNewClient(client, password, code); err != nil {
		zap.L().Error("failed to dispatch client welcome notification",
			zap.String("client_id", client.ID),
			zap.Error(err))
	}
}

func dispatchCompteCreated(compte *models.Compte) {
	if err := ActiveNotifier.NotifyCompteCreated(compte); err != nil {
		zap.L().Error("failed to publish compte created event",
			zap.String("compte_id", compte.ID),
			zap.Error(err))
	}
}
