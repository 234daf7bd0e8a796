package migration

// Plan compares the schema version recorded in the database with the
// migration files on disk.
type Plan struct {
	Applied uint
	Dirty   bool
	Latest  uint
	Pending []string
}

// NewPlan lists the migrations newer than status.Version. Files without a
// numeric version prefix are ignored.
func NewPlan(status Status, migrations []string) Plan {
	plan := Plan{Applied: status.Version, Dirty: status.Dirty, Pending: []string{}}
	for _, name := range migrations {
		v, err := parseVersion(name)
		if err != nil || v < 0 {
			continue
		}
		version := uint(v)
		if version > plan.Latest {
			plan.Latest = version
		}
		if version > status.Version {
			plan.Pending = append(plan.Pending, name)
		}
	}
	return plan
}

// UpToDate reports whether every migration on disk has been applied cleanly
func (p Plan) UpToDate() bool {
	return !p.Dirty && len(p.Pending) == 0
}
