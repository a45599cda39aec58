package service

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// Registry hosts independent tables keyed by id.
type Registry struct {
	sync.Mutex

	cfg     config.Config
	tables  *hashmap.HashMap
	size    int
	created int64
}

func NewRegistry(cfg config.Config) *Registry {
	return &Registry{
		cfg:    cfg,
		tables: hashmap.New(),
	}
}

// Create starts a new game for the players. Extra options are passed to
// game.New after the registry's own.
func (r *Registry) Create(playerNames []string, opts ...game.Option) (*Table, error) {
	r.Lock()
	defer r.Unlock()
	if r.size >= r.cfg.MaxTables {
		return nil, errors.Wrapf(consts.ErrorsTooManyTables, "limit %d", r.cfg.MaxTables)
	}

	id := uuid.New().String()
	options := []game.Option{game.WithListener(newLogListener(id))}
	if r.cfg.Seed != 0 {
		options = append(options, game.WithSeed(r.cfg.Seed+r.created))
	}
	g, err := game.New(playerNames, append(options, opts...)...)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	table := &Table{
		id:         id,
		game:       g,
		createdAt:  now,
		activeTime: now,
	}
	r.tables.Set(table.id, table)
	r.size++
	r.created++
	log.Infof("table %s created\n%s", table.id, msg.Message.Welcome(playerNames))
	return table, nil
}

func (r *Registry) Get(id string) (*Table, error) {
	r.Lock()
	defer r.Unlock()
	if v, ok := r.tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, errors.Wrapf(consts.ErrorsTableNotFound, "table %s", id)
}

func (r *Registry) Remove(id string) bool {
	r.Lock()
	defer r.Unlock()
	return r.remove(id)
}

func (r *Registry) remove(id string) bool {
	if _, ok := r.tables.Get(id); !ok {
		return false
	}
	r.tables.Del(id)
	r.size--
	return true
}

// Tables lists every hosted table, oldest first.
func (r *Registry) Tables() []*Table {
	r.Lock()
	defer r.Unlock()
	return r.snapshot()
}

func (r *Registry) snapshot() []*Table {
	list := make([]*Table, 0, r.size)
	r.tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].createdAt.Equal(list[j].createdAt) {
			return list[i].id < list[j].id
		}
		return list[i].createdAt.Before(list[j].createdAt)
	})
	return list
}

// Sweep removes finished tables and tables idle longer than the configured
// timeout. It returns the number of tables removed. Table locks are taken
// without holding the registry lock.
func (r *Registry) Sweep(now time.Time) int {
	removed := 0
	for _, table := range r.Tables() {
		if table.idle(now, r.cfg.IdleTimeout) && r.Remove(table.id) {
			log.Infof("table %s is not living, removed.\n", table.id)
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps in the background every SweepInterval until stop is called.
func (r *Registry) StartSweeper() (stop func()) {
	done := make(chan struct{})
	async.Async(func() {
		ticker := time.NewTicker(r.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				r.Sweep(now)
			}
		}
	})
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
