package repository

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// SnapshotRepository guarda a carga atual da planilha em memória. Não há persistência.
type SnapshotRepository interface {
	Save(snapshot *domain.DatasetSnapshot)
	Current() *domain.DatasetSnapshot
}

type snapshotRepository struct {
	mu       sync.RWMutex
	snapshot *domain.DatasetSnapshot
}

func NewSnapshotRepository() SnapshotRepository {
	return &snapshotRepository{}
}

// Save substitui o snapshot inteiro. O snapshot salvo não deve ser alterado depois.
func (r *snapshotRepository) Save(snapshot *domain.DatasetSnapshot) {
	if snapshot == nil {
		return
	}

	r.mu.Lock()
	previous := r.snapshot
	r.snapshot = snapshot
	r.mu.Unlock()

	fields := logrus.Fields{
		"snapshot_id": snapshot.ID,
		"records":     len(snapshot.Records),
	}
	if previous != nil {
		fields["previous_snapshot_id"] = previous.ID
	}
	logrus.WithFields(fields).Debug("Snapshot da planilha atualizado")
}

// Current retorna nil enquanto nenhuma carga foi concluída
func (r *snapshotRepository) Current() *domain.DatasetSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot
}
