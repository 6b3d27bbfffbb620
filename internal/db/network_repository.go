package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Flarenzy/rdap-registry/internal/domain"
	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

var (
	_ domain.NetworkRepository = (*NetworkRepository)(nil)
	_ domain.NetworkStore      = (*NetworkRepository)(nil)
)

type NetworkRepository struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewNetworkRepository(pool *pgxpool.Pool) *NetworkRepository {
	return &NetworkRepository{pool: pool, db: pool}
}

func (r *NetworkRepository) FindIDByHandle(ctx context.Context, handle string) (int64, bool, error) {
	var id int64
	if err := r.db.QueryRow(ctx, findNetworkIDByHandle, handle).Scan(&id); err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (r *NetworkRepository) FindByAddress(ctx context.Context, family ipaddr.Family, encoded string) (domain.Network, error) {
	network, err := scanNetwork(r.db.QueryRow(ctx, findNetworkByAddress, encoded, family.String()))
	if err != nil {
		if isNoRows(err) {
			return domain.Network{}, domain.ErrNotFound
		}
		return domain.Network{}, err
	}

	if err := r.loadAttributes(ctx, &network); err != nil {
		return domain.Network{}, err
	}
	return network, nil
}

func (r *NetworkRepository) WithinTx(ctx context.Context, fn func(domain.NetworkStore) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&NetworkRepository{pool: r.pool, db: tx})
	})
}

func (r *NetworkRepository) Save(ctx context.Context, network *domain.Network) error {
	err := r.db.QueryRow(ctx, insertNetwork, networkArgs(network)...).Scan(&network.ID, &network.CreatedAt, &network.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, uniqueNetworkHandle) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *NetworkRepository) Update(ctx context.Context, network *domain.Network) error {
	err := r.db.QueryRow(ctx, updateNetwork, networkArgs(network)...).Scan(&network.ID, &network.CreatedAt, &network.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// SaveStatus replaces the status set of a persisted network.
func (r *NetworkRepository) SaveStatus(ctx context.Context, network *domain.Network) error {
	batch := &pgx.Batch{}
	batch.Queue(deleteNetworkStatus, network.ID)
	for _, status := range network.Status {
		batch.Queue(insertNetworkStatus, network.ID, status)
	}
	return r.db.SendBatch(ctx, batch).Close()
}

// SaveBaseAttributes replaces the events and links shared by every resource
// type.
func (r *NetworkRepository) SaveBaseAttributes(ctx context.Context, network *domain.Network) error {
	batch := &pgx.Batch{}
	batch.Queue(deleteResourceEvents, domain.ResourceTypeNetwork, network.ID)
	batch.Queue(deleteResourceLinks, domain.ResourceTypeNetwork, network.ID)
	for _, e := range network.Events {
		date := pgtype.Timestamptz{Time: e.Date, Valid: !e.Date.IsZero()}
		batch.Queue(insertResourceEvent, domain.ResourceTypeNetwork, network.ID, e.Action, e.Actor, date)
	}
	for _, l := range network.Links {
		batch.Queue(insertResourceLink, domain.ResourceTypeNetwork, network.ID, l.Rel, l.Href)
	}
	return r.db.SendBatch(ctx, batch).Close()
}

func (r *NetworkRepository) loadAttributes(ctx context.Context, network *domain.Network) error {
	rows, err := r.db.Query(ctx, listNetworkStatus, network.ID)
	if err != nil {
		return err
	}
	network.Status, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("list network status: %w", err)
	}

	rows, err = r.db.Query(ctx, listResourceEvents, domain.ResourceTypeNetwork, network.ID)
	if err != nil {
		return err
	}
	network.Events, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var e domain.Event
		var date pgtype.Timestamptz
		if err := row.Scan(&e.Action, &e.Actor, &date); err != nil {
			return domain.Event{}, err
		}
		if date.Valid {
			e.Date = date.Time
		}
		return e, nil
	})
	if err != nil {
		return fmt.Errorf("list network events: %w", err)
	}

	rows, err = r.db.Query(ctx, listResourceLinks, domain.ResourceTypeNetwork, network.ID)
	if err != nil {
		return err
	}
	network.Links, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Link, error) {
		var l domain.Link
		err := row.Scan(&l.Rel, &l.Href)
		return l, err
	})
	if err != nil {
		return fmt.Errorf("list network links: %w", err)
	}
	return nil
}

func networkArgs(n *domain.Network) []any {
	props := n.CustomPropertiesJSON
	if props == "" {
		props = "{}"
	}
	return []any{
		n.Handle,
		n.StartAddress,
		n.EndAddress,
		n.IPVersion.String(),
		n.Name,
		n.Type,
		n.Country,
		n.ParentHandle,
		json.RawMessage(props),
	}
}

func scanNetwork(row pgx.Row) (domain.Network, error) {
	var (
		n       domain.Network
		version string
		props   []byte
	)
	err := row.Scan(
		&n.ID,
		&n.Handle,
		&n.StartAddress,
		&n.EndAddress,
		&version,
		&n.Name,
		&n.Type,
		&n.Country,
		&n.ParentHandle,
		&props,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return domain.Network{}, err
	}

	n.IPVersion, err = ipaddr.ParseFamily(version)
	if err != nil {
		return domain.Network{}, err
	}
	n.CustomPropertiesJSON = string(props)
	if len(props) > 0 {
		if err := json.Unmarshal(props, &n.CustomProperties); err != nil {
			return domain.Network{}, fmt.Errorf("decode custom properties: %w", err)
		}
	}
	return n, nil
}
