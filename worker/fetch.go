package worker

// KnownHashes returns which of the given content hashes already have a
// ledger row, keyed by hash.
func (l *Ledger) KnownHashes(cloudName string, hashes []string) (map[string]Asset, error) {
	if len(hashes) == 0 {
		return map[string]Asset{}, nil
	}

	var rows []Asset
	if err := l.db.Where("cloud_name = ? AND hash IN ?", cloudName, hashes).Find(&rows).Error; err != nil {
		return nil, err
	}

	return mapByHash(rows), nil
}

// FindByPrefix lists ledger rows whose public id starts with prefix.
func (l *Ledger) FindByPrefix(cloudName, prefix string) ([]Asset, error) {
	var rows []Asset
	err := l.db.Where("cloud_name = ? AND public_id LIKE ?", cloudName, prefix+"%").Find(&rows).Error
	return rows, err
}

func mapByHash(rows []Asset) map[string]Asset {
	known := make(map[string]Asset, len(rows))
	for _, row := range rows {
		known[row.Hash] = row
	}
	return known
}
