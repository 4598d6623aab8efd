package events

import (
	"encoding/json"
	"time"

	"walletcore/internal/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// AMQPEmitter publishes events as JSON messages to a topic exchange. Publish
// failures are logged and dropped; the ledger transaction has already
// committed by the time an event is emitted.
type AMQPEmitter struct {
	channel  *amqp.Channel
	exchange string
	log      *logrus.Logger
}

func NewAMQPEmitter(conn *amqp.Connection, exchange string, log *logrus.Logger) (*AMQPEmitter, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPEmitter{channel: ch, exchange: exchange, log: log}, nil
}

type operationEvent struct {
	Event           string     `json:"event"`
	OperationID     string     `json:"operationId"`
	TransactionType string     `json:"transactionType"`
	Currency        string     `json:"currency"`
	Value           int64      `json:"value"`
	State           string     `json:"state"`
	RevertedAt      *time.Time `json:"revertedAt,omitempty"`
}

type walletEvent struct {
	Event      string `json:"event"`
	WalletUUID string `json:"walletUuid"`
	UserID     uint   `json:"userId"`
}

func (e *AMQPEmitter) AcceptedOperation(op *models.Operation) {
	e.publish("operation.accepted", operationEvent{
		Event:           "acceptedOperation",
		OperationID:     op.ID,
		TransactionType: op.TransactionType,
		Currency:        op.Currency,
		Value:           op.Value,
		State:           op.State,
	})
}

func (e *AMQPEmitter) RevertedOperation(op *models.Operation) {
	e.publish("operation.reverted", operationEvent{
		Event:           "revertedOperation",
		OperationID:     op.ID,
		TransactionType: op.TransactionType,
		Currency:        op.Currency,
		Value:           op.Value,
		State:           op.State,
		RevertedAt:      op.RevertedAt,
	})
}

func (e *AMQPEmitter) WalletDeleted(wallet *models.Wallet) {
	e.publish("wallet.deleted", walletEvent{
		Event:      "walletDeleted",
		WalletUUID: wallet.UUID,
		UserID:     wallet.UserID,
	})
}

func (e *AMQPEmitter) publish(routingKey string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		e.log.WithError(err).WithField("routingKey", routingKey).Error("failed to marshal event")
		return
	}
	err = e.channel.Publish(e.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		e.log.WithError(err).WithField("routingKey", routingKey).Error("failed to publish event")
	}
}

func (e *AMQPEmitter) Close() error {
	return e.channel.Close()
}
