package styles

import "github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"

// ProtectionRecord is the canonical protection category.
type ProtectionRecord struct {
	Unlocked bool
	Hidden   bool
}

func protectionRecord(p models.Protection) *ProtectionRecord {
	if !p.Unlocked && !p.Hidden {
		return nil
	}
	return &ProtectionRecord{Unlocked: p.Unlocked, Hidden: p.Hidden}
}

func protectionFormat(r *ProtectionRecord) models.Protection {
	if r == nil {
		return models.Protection{}
	}
	return models.Protection{Unlocked: r.Unlocked, Hidden: r.Hidden}
}
