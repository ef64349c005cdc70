package utils

import (
	"context"
	"fmt"

	"bethouse/domain/entities"
	"bethouse/domain/events"
	"bethouse/domain/interfaces"
)

// RecordBalanceChange appends the transaction log entry for one balance
// mutation and publishes the matching BalanceChangedEvent. Every mutation in
// the system goes through here so the log and the event stream stay 1:1 with
// balance writes.
func RecordBalanceChange(ctx context.Context, txRepo interfaces.TransactionRepository, publisher interfaces.EventPublisher, entry *entities.Transaction, balanceBefore, balanceAfter int64) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid transaction entry: %w", err)
	}

	if err := txRepo.Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := publisher.Publish(events.BalanceChangedEvent{
		UserID:          entry.UserID,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		ChangeAmount:    balanceAfter - balanceBefore,
		TransactionType: entry.Type,
	}); err != nil {
		return fmt.Errorf("failed to publish balance change event: %w", err)
	}

	return nil
}
