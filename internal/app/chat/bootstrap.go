package chat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"frenchreborn/internal/app/auth"
	"frenchreborn/internal/app/db"
	dbc "frenchreborn/internal/app/db/sqlc"
	"frenchreborn/internal/app/user"
	"frenchreborn/internal/pkg/logx"
	"frenchreborn/internal/pkg/randx"
)

// BootstrapConfig names the seeded owner account and default province.
type BootstrapConfig struct {
	OwnerUsername   string
	OwnerPassword   string
	DefaultRoomName string
}

// BootstrapResult describes the seeded records.
type BootstrapResult struct {
	Room         Room
	OwnerID      int64
	OwnerCreated bool
}

// Bootstrap makes sure the default province and the owner account exist.
// It is idempotent: running it again, or concurrently from several processes,
// never creates duplicates.
func Bootstrap(ctx context.Context, store db.Store, hasher auth.Hasher, cfg BootstrapConfig) (*BootstrapResult, error) {
	_, err := store.GetUserByUsername(ctx, cfg.OwnerUsername)
	if err != nil && !db.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	ownerExists := err == nil

	var ownerHash string
	generated := ""
	if !ownerExists {
		password := cfg.OwnerPassword
		if password == "" {
			if password, err = randx.Base62(16); err != nil {
				return nil, fmt.Errorf("failed to generate owner password: %w", err)
			}
			generated = password
		}
		if ownerHash, err = hasher.Hash(password); err != nil {
			return nil, fmt.Errorf("failed to hash owner password: %w", err)
		}
	}

	result := &BootstrapResult{}
	err = store.ExecTx(ctx, func(q dbc.Querier) error {
		if err := q.CreateRoomIfNotExists(ctx, cfg.DefaultRoomName); err != nil {
			return err
		}
		room, err := q.GetRoomByName(ctx, cfg.DefaultRoomName)
		if err != nil {
			return err
		}
		result.Room = roomFromRow(room)

		if !ownerExists {
			if err := q.CreateUserIfNotExists(ctx, dbc.CreateUserIfNotExistsParams{
				Username:     cfg.OwnerUsername,
				PasswordHash: ownerHash,
				Role:         string(user.RoleOwner),
				RoomID:       pgtype.Int8{Int64: room.ID, Valid: true},
			}); err != nil {
				return err
			}
		}

		owner, err := q.GetUserByUsername(ctx, cfg.OwnerUsername)
		if err != nil {
			return err
		}
		result.OwnerID = owner.ID
		result.OwnerCreated = !ownerExists && owner.PasswordHash == ownerHash
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap failed: %w", err)
	}

	if result.OwnerCreated {
		fields := []any{"owner", cfg.OwnerUsername, "room", result.Room.Name}
		if generated != "" {
			fields = append(fields, "generated_password", generated)
		}
		logx.Warn("Owner account created", fields...)
	}
	logx.Info("Bootstrap complete", "room_id", result.Room.ID, "owner_id", result.OwnerID)

	return result, nil
}
