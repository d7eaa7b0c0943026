package worker

import "gorm.io/gorm/clause"

// RecordAssets inserts ledger rows for freshly uploaded assets. Replays of
// the same public id are ignored.
func (l *Ledger) RecordAssets(assets []Asset) error {
	if len(assets) == 0 {
		return nil
	}

	return l.db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(assets, 50).Error
}

// RemoveByPublicIDs drops ledger rows for deleted assets.
func (l *Ledger) RemoveByPublicIDs(cloudName string, publicIDs []string) error {
	if len(publicIDs) == 0 {
		return nil
	}

	return l.db.Delete(&Asset{}, "cloud_name = ? AND public_id IN ?", cloudName, publicIDs).Error
}

// RemoveByPrefix drops every ledger row whose public id starts with prefix.
func (l *Ledger) RemoveByPrefix(cloudName, prefix string) error {
	return l.db.Delete(&Asset{}, "cloud_name = ? AND public_id LIKE ?", cloudName, prefix+"%").Error
}
