// Package memory keeps inventory records in process memory. It backs
// STORAGE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"office-inventory/internal/entities"
	"office-inventory/internal/repositories"
	apperrors "office-inventory/pkg/errors"
	"office-inventory/pkg/types"
)

type state struct {
	equipment map[uuid.UUID]entities.Equipment
	issues    map[uuid.UUID]entities.Issue
	transfers map[uuid.UUID]entities.Transfer
	// insertion order, breaks created_at ties
	seq      uint64
	inserted map[uuid.UUID]uint64
}

// Store holds all tables behind one lock so the equipment/issue
// reference check behaves like the foreign key.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: state{
		equipment: make(map[uuid.UUID]entities.Equipment),
		issues:    make(map[uuid.UUID]entities.Issue),
		transfers: make(map[uuid.UUID]entities.Transfer),
		inserted:  make(map[uuid.UUID]uint64),
	}}
}

func (s *Store) track(id uuid.UUID) {
	s.state.seq++
	s.state.inserted[id] = s.state.seq
}

func (s *Store) newer(aTime time.Time, aID uuid.UUID, bTime time.Time, bID uuid.UUID) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return s.state.inserted[aID] > s.state.inserted[bID]
}

func (s *Store) Equipment() repositories.EquipmentRepositoryInterface { return &equipmentRepo{s} }
func (s *Store) Issues() repositories.IssueRepositoryInterface        { return &issueRepo{s} }
func (s *Store) Transfers() repositories.TransferRepositoryInterface  { return &transferRepo{s} }

type equipmentRepo struct{ s *Store }

func (r *equipmentRepo) LatestIdentifier(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest entities.Equipment
	found := false
	for _, e := range r.s.state.equipment {
		if !strings.HasPrefix(e.UniqueID, prefix) {
			continue
		}
		if !found || r.s.newer(e.CreatedAt, e.ID, latest.CreatedAt, latest.ID) {
			latest, found = e, true
		}
	}
	return latest.UniqueID, nil
}

func (r *equipmentRepo) CreateEquipment(_ context.Context, e entities.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.state.equipment[e.ID] = e
	r.s.track(e.ID)
	return nil
}

func (r *equipmentRepo) FindEquipment(_ context.Context, id uuid.UUID) (*entities.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.state.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *equipmentRepo) FindEquipmentByIDs(_ context.Context, ids []uuid.UUID) ([]entities.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Equipment, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.s.state.equipment[id]; ok {
			list = append(list, e)
		}
	}
	return list, nil
}

func (r *equipmentRepo) GetEquipments(_ context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Equipment, 0, len(r.s.state.equipment))
	for _, e := range r.s.state.equipment {
		if !matchFilter(filter, "inventory_type", e.InventoryType) {
			continue
		}
		if !matchSearch(filter.Search, e.UniqueID, e.SerialNumber, e.Brand, e.Model) {
			continue
		}
		list = append(list, e)
	}
	sortByCreated(r.s, list, sortAscending(filter), func(e entities.Equipment) (time.Time, uuid.UUID) { return e.CreatedAt, e.ID })
	page, total := paginate(list, filter)
	return page, total, nil
}

func (r *equipmentRepo) GetAllEquipments(_ context.Context) ([]entities.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Equipment, 0, len(r.s.state.equipment))
	for _, e := range r.s.state.equipment {
		list = append(list, e)
	}
	sortByCreated(r.s, list, false, func(e entities.Equipment) (time.Time, uuid.UUID) { return e.CreatedAt, e.ID })
	return list, nil
}

func (r *equipmentRepo) DeleteEquipment(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.state.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	for _, i := range r.s.state.issues {
		if i.InventoryID == id {
			return apperrors.ErrEquipmentIssued
		}
	}
	delete(r.s.state.equipment, id)
	delete(r.s.state.inserted, id)
	return nil
}

type issueRepo struct{ s *Store }

func (r *issueRepo) LatestIdentifier(_ context.Context, prefix string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest entities.Issue
	found := false
	for _, i := range r.s.state.issues {
		if !strings.HasPrefix(i.UID, prefix) {
			continue
		}
		if !found || r.s.newer(i.CreatedAt, i.ID, latest.CreatedAt, latest.ID) {
			latest, found = i, true
		}
	}
	return latest.UID, nil
}

func (r *issueRepo) CreateIssue(_ context.Context, issue entities.Issue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.state.equipment[issue.InventoryID]; !ok {
		return apperrors.ErrNotFound
	}
	for _, existing := range r.s.state.issues {
		if existing.InventoryID == issue.InventoryID {
			return apperrors.ErrAlreadyIssued
		}
	}
	r.s.state.issues[issue.ID] = issue
	r.s.track(issue.ID)
	return nil
}

func (r *issueRepo) FindIssue(_ context.Context, id uuid.UUID) (*entities.Issue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.state.issues[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &i, nil
}

func (r *issueRepo) GetIssues(_ context.Context, filter types.Filter) ([]entities.Issue, uint64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Issue, 0, len(r.s.state.issues))
	for _, i := range r.s.state.issues {
		if !matchFilter(filter, "issue_type", i.IssueType) || !matchFilter(filter, "employee_section", i.EmployeeSection) {
			continue
		}
		if !matchSearch(filter.Search, i.UID, i.UniqueID, i.SerialNumber, i.IssuedTo.String, i.EmployeeSection) {
			continue
		}
		list = append(list, i)
	}
	sortByCreated(r.s, list, sortAscending(filter), func(i entities.Issue) (time.Time, uuid.UUID) { return i.CreatedAt, i.ID })
	page, total := paginate(list, filter)
	return page, total, nil
}

func (r *issueRepo) GetAllIssues(_ context.Context) ([]entities.Issue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Issue, 0, len(r.s.state.issues))
	for _, i := range r.s.state.issues {
		list = append(list, i)
	}
	sortByCreated(r.s, list, false, func(i entities.Issue) (time.Time, uuid.UUID) { return i.CreatedAt, i.ID })
	return list, nil
}

func (r *issueRepo) IsIssued(_ context.Context, inventoryID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, i := range r.s.state.issues {
		if i.InventoryID == inventoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *issueRepo) DeleteIssue(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.state.issues[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.state.issues, id)
	delete(r.s.state.inserted, id)
	return nil
}

type transferRepo struct{ s *Store }

func (r *transferRepo) CreateTransfer(_ context.Context, t entities.Transfer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.state.transfers[t.ID] = t
	r.s.track(t.ID)
	return nil
}

func (r *transferRepo) GetTransfers(_ context.Context, filter types.Filter) ([]entities.Transfer, uint64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Transfer, 0, len(r.s.state.transfers))
	for _, t := range r.s.state.transfers {
		if !matchFilter(filter, "action_type", t.ActionType) || !matchFilter(filter, "condition", t.Condition) {
			continue
		}
		if !matchSearch(filter.Search, t.AssetTag, t.SerialNumber, t.TransferredTo.String, t.ApprovedBy) {
			continue
		}
		list = append(list, t)
	}
	sortByCreated(r.s, list, sortAscending(filter), func(t entities.Transfer) (time.Time, uuid.UUID) { return t.CreatedAt, t.ID })
	page, total := paginate(list, filter)
	return page, total, nil
}

func (r *transferRepo) GetAllTransfers(_ context.Context) ([]entities.Transfer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]entities.Transfer, 0, len(r.s.state.transfers))
	for _, t := range r.s.state.transfers {
		list = append(list, t)
	}
	sortByCreated(r.s, list, false, func(t entities.Transfer) (time.Time, uuid.UUID) { return t.CreatedAt, t.ID })
	return list, nil
}

func matchFilter(filter types.Filter, field, value string) bool {
	raw, ok := filter.Filter[field]
	if !ok {
		return true
	}
	s, ok := raw.(string)
	if !ok {
		return false
	}
	for _, want := range strings.Split(s, ",") {
		if want == value {
			return true
		}
	}
	return false
}

func matchSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortAscending(filter types.Filter) bool {
	return strings.EqualFold(filter.Sort["created_at"], "asc")
}

func sortByCreated[T any](s *Store, list []T, asc bool, key func(T) (time.Time, uuid.UUID)) {
	sort.SliceStable(list, func(a, b int) bool {
		at, aid := key(list[a])
		bt, bid := key(list[b])
		if asc {
			return s.newer(bt, bid, at, aid)
		}
		return s.newer(at, aid, bt, bid)
	})
}

func paginate[T any](list []T, filter types.Filter) ([]T, uint64) {
	total := uint64(len(list))
	if !filter.WithPagination || filter.Limit <= 0 {
		return list, total
	}
	start := filter.Offset
	if start > len(list) {
		start = len(list)
	}
	end := start + filter.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], total
}
