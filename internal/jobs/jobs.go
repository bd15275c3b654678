package jobs

import (
	"time"

	"gesbanque-backend/internal/models"
	"gesbanque-backend/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Jobs holds the two maintenance sweeps. Both are full-table scans over the
// blocked accounts, meant to run once a day from a single scheduler instance.
type Jobs struct {
	db *gorm.DB
}

func NewJobs(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

// ArchiveExpiredBlockedAccounts archives every blocked account whose block
// start date is in the past and hard deletes its transactions. The predicate
// intentionally checks date_blocage, not date_deblocage_prevue, to keep the
// historical behavior. A failure on one account is logged and the sweep
// continues with the rest.
func (j *Jobs) ArchiveExpiredBlockedAccounts() {
	now := time.Now().UTC()

	var comptes []models.Compte
	err := j.db.
		Where("deleted_at IS NULL").
		Where("statut_blocage = ?", models.BlocageBloque).
		Where("date_blocage < ?", now).
		Find(&comptes).Error
	if err != nil {
		zap.L().Error("archive sweep: failed to load blocked accounts", zap.Error(err))
		return
	}

	archived, failed := 0, 0
	for i := range comptes {
		compte := &comptes[i]
		if err := j.archiveCompte(compte, now); err != nil {
			failed++
			zap.L().Error("archive sweep: failed to archive compte",
				zap.String("compte_id", compte.ID),
				zap.String("numero_compte", compte.NumeroCompte),
				zap.Error(err))
			continue
		}
		services.InvalidateCompteCache(compte.ID)
		archived++
		zap.L().Info("compte et transactions archivés suite à expiration du blocage",
			zap.String("numero_compte", compte.NumeroCompte))
	}

	zap.L().Info("job ArchiveExpiredBlockedAccounts exécuté",
		zap.Int("archived", archived),
		zap.Int("failed", failed))
}

func (j *Jobs) archiveCompte(compte *models.Compte, now time.Time) error {
	return j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(compte).Update("deleted_at", now).Error; err != nil {
			return err
		}
		return tx.Where("compte_id = ?", compte.ID).Delete(&models.Transaction{}).Error
	})
}

// UnblockExpiredAccounts lifts the block on every account whose expected
// unblock date has passed. Re-running is a no-op: the predicate no longer
// matches once the fields are reset. Unlike the admin-driven UnblockCompte,
// the sweep does not bump metadata.version, matching the historical behavior
// of the scheduled job.
func (j *Jobs) UnblockExpiredAccounts() {
	now := time.Now().UTC()

	var comptes []models.Compte
	err := j.db.
		Where("deleted_at IS NULL").
		Where("statut_blocage = ?", models.BlocageBloque).
		Where("date_deblocage_prevue < ?", now).
		Find(&comptes).Error
	if err != nil {
		zap.L().Error("unblock sweep: failed to load expired blocks", zap.Error(err))
		return
	}

	unblocked, failed := 0, 0
	for i := range comptes {
		compte := &comptes[i]
		err := j.db.Model(compte).Updates(map[string]interface{}{
			"statut_blocage":        models.BlocageActif,
			"motif_blocage":         nil,
			"date_blocage":          nil,
			"date_deblocage_prevue": nil,
		}).Error
		if err != nil {
			failed++
			zap.L().Error("unblock sweep: failed to unblock compte",
				zap.String("compte_id", compte.ID),
				zap.String("numero_compte", compte.NumeroCompte),
				zap.Error(err))
			continue
		}
		services.InvalidateCompteCache(compte.ID)
		unblocked++
		zap.L().Info("compte débloqué suite à expiration de la période de blocage",
			zap.String("numero_compte", compte.NumeroCompte))
	}

	zap.L().Info("job UnblockExpiredAccounts exécuté",
		zap.Int("unblocked", unblocked),
		zap.Int("failed", failed))
}
