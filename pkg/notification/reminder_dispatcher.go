package notification

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"
	"pocketsense-backend/internal/utils/mailing"

	"github.com/prometheus/client_golang/prometheus"
)

const reminderSubject = "Payment Reminder from PocketSense"

var reminderTemplate = template.Must(template.New("reminder").Parse(`Hi {{.Receiver}},

This is a reminder to settle the amount of ₹{{.Amount}} owed to {{.Payer}} for the expense in group "{{.Group}}".
Please make the payment by {{.DueDate}} using your preferred payment method.
`))

type (
	ReminderDispatcher interface {
		SendReminder(ctx context.Context, settlement *entities.Settlement) error
	}

	reminderMetrics struct {
		sent   prometheus.Counter
		failed prometheus.Counter
	}

	reminderDispatcher struct {
		mailer  mailing.Mailer
		metrics *reminderMetrics
	}

	reminderData struct {
		Receiver string
		Amount   string
		Payer    string
		Group    string
		DueDate  string
	}
)

func NewReminderDispatcher(mailer mailing.Mailer) ReminderDispatcher {
	return NewReminderDispatcherWithRegistry(mailer, prometheus.DefaultRegisterer)
}

func NewReminderDispatcherWithRegistry(mailer mailing.Mailer, reg prometheus.Registerer) ReminderDispatcher {
	metrics := &reminderMetrics{
		sent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pocketsense_reminders_sent_total",
			Help: "Total number of settlement reminders sent",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pocketsense_reminder_errors_total",
			Help: "Total number of settlement reminders that failed to send",
		}),
	}
	reg.MustRegister(metrics.sent, metrics.failed)

	return &reminderDispatcher{
		mailer:  mailer,
		metrics: metrics,
	}
}

func renderReminder(s *entities.Settlement) (string, error) {
	data := reminderData{
		Amount:  s.Amount.StringFixed(2),
		Group:   "N/A",
		DueDate: "N/A",
	}
	if s.Receiver != nil {
		data.Receiver = s.Receiver.Username
	}
	if s.Payer != nil {
		data.Payer = s.Payer.Username
	}
	if s.Group != nil {
		data.Group = s.Group.Name
	}
	if s.DueDate != nil {
		data.DueDate = s.DueDate.Format(domain.DateLayout)
	}

	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendReminder mails the receiver of a pending settlement. Settled
// settlements are rejected before the transport is touched; transport
// failures come back wrapped in domain.ErrReminderDelivery.
func (d *reminderDispatcher) SendReminder(ctx context.Context, settlement *entities.Settlement) error {
	if settlement.PaymentStatus == domain.PaymentStatusSettled {
		return domain.ErrSettlementAlreadySettled
	}

	log := logger.GetLogger()
	body, err := renderReminder(settlement)
	if err != nil {
		d.metrics.failed.Inc()
		return fmt.Errorf("%w: %v", domain.ErrReminderDelivery, err)
	}

	var recipient string
	if settlement.Receiver != nil {
		recipient = settlement.Receiver.Email
	}

	err = d.mailer.Send(ctx, mailing.Message{
		To:      []string{recipient},
		Subject: reminderSubject,
		Body:    body,
	})
	if err != nil {
		d.metrics.failed.Inc()
		log.Errorw("Failed to send reminder",
			"settlement_id", settlement.ID,
			"error", err)
		return fmt.Errorf("%w: %v", domain.ErrReminderDelivery, err)
	}

	d.metrics.sent.Inc()
	log.Infow("Reminder sent",
		"settlement_id", settlement.ID,
		"to", logger.MaskEmail(recipient))
	return nil
}
