package application

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Reputation deltas awarded for community signals. Questions and answers earn
// their owner a different amount per vote; an accepted answer earns the most.
const (
	ReputationQuestionVote int64 = 5
	ReputationAnswerVote   int64 = 10
	ReputationAccepted     int64 = 15
)

const (
	ReasonQuestionVote   = "question_vote"
	ReasonAnswerVote     = "answer_vote"
	ReasonAnswerAccepted = "answer_accepted"
)

// ReputationEvent is published to the reputation queue whenever a vote or
// accept should move a profile's reputation. The worker applies the delta.
type ReputationEvent struct {
	UserID string `json:"user_id"`
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

// ReputationPublisher is satisfied by helpers.RabbitPublisher. Services treat
// it as optional: a nil publisher disables reputation events.
type ReputationPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// publishReputation sends the event best-effort. A publish failure is logged
// and never fails the request that produced it.
func publishReputation(ctx context.Context, pub ReputationPublisher, logger *logrus.Logger, userID string, delta int64, reason string) {
	if pub == nil {
		return
	}
	ev := ReputationEvent{UserID: userID, Delta: delta, Reason: reason}
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"reason":  reason,
		}).Warn("publish reputation event failed")
	}
}
