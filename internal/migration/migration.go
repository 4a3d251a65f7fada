// Package migration upgrades persisted snapshots of any schema version to the current one.
//
// Input is treated as an untyped JSON tree. Each step only fills fields that are absent, so
// running the chain on already-current data changes nothing. After the chain the tree is
// decoded into domain.PluginData and structurally repaired so that every board holds exactly
// the six fixed groups.
package migration

import (
	"encoding/json"
	"fmt"

	"github.com/riordanpawley/taskmaster/internal/domain"
)

// Migration represents one schema upgrade step
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]any)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// 1 -> 2: interface language, card view
	{
		FromVersion: 1,
		ToVersion:   2,
		Migrate: func(data map[string]any) {
			settings := ensureObject(data, "settings")
			setDefault(settings, "language", string(domain.LanguageAuto))
			setDefault(settings, "cardView", string(domain.CardViewDefault))
		},
	},
	// 2 -> 3: board notes
	{
		FromVersion: 2,
		ToVersion:   3,
		Migrate: func(data map[string]any) {
			forEachBoard(data, func(board map[string]any) {
				setDefault(board, "notes", "")
				setDefault(board, "notesCollapsed", true)
			})
		},
	},
	// 3 -> 4: hidden groups
	{
		FromVersion: 3,
		ToVersion:   4,
		Migrate: func(data map[string]any) {
			forEachBoard(data, func(board map[string]any) {
				setDefault(board, "hiddenGroups", []any{})
			})
		},
	},
	// 4 -> 5: per-group full width
	{
		FromVersion: 4,
		ToVersion:   5,
		Migrate: func(data map[string]any) {
			forEachBoard(data, func(board map[string]any) {
				forEachGroup(board, func(id domain.GroupID, group map[string]any) {
					setDefault(group, "fullWidth", domain.DefaultFullWidth[id])
				})
			})
		},
	},
	// 5 -> 6: card layout
	{
		FromVersion: 5,
		ToVersion:   6,
		Migrate: func(data map[string]any) {
			settings := ensureObject(data, "settings")
			setDefault(settings, "cardLayout", string(domain.CardLayoutSingle))
		},
	},
	// 6 -> 7: notes visibility
	{
		FromVersion: 6,
		ToVersion:   7,
		Migrate: func(data map[string]any) {
			forEachBoard(data, func(board map[string]any) {
				setDefault(board, "notesHidden", false)
			})
		},
	},
}

// LatestVersion returns the version the last known step produces
func LatestVersion() int {
	return migrations[len(migrations)-1].ToVersion
}

// Report describes what a migration run did
type Report struct {
	FromVersion int
	ToVersion   int
	// Reset is set when the input was replaced by a fresh default dataset
	Reset bool
	// Reason explains a reset or a repair
	Reason string
	// Repairs lists structural fixes applied after the chain
	Repairs []string
}

// Migrate upgrades raw to the current schema. It never fails: absent, non-object or
// unversioned input yields a fresh default dataset.
func Migrate(raw any) *domain.PluginData {
	data, _ := MigrateWithReport(raw)
	return data
}

// MigrateJSON decodes persisted bytes and migrates them. Empty or undecodable bytes yield a
// fresh default dataset.
func MigrateJSON(b []byte) (*domain.PluginData, Report) {
	if len(b) == 0 {
		return domain.NewPluginData(), Report{ToVersion: domain.CurrentVersion, Reset: true, Reason: "no stored data"}
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.NewPluginData(), Report{ToVersion: domain.CurrentVersion, Reset: true, Reason: fmt.Sprintf("undecodable data: %v", err)}
	}
	return MigrateWithReport(raw)
}

// MigrateWithReport is Migrate plus a description of the work done
func MigrateWithReport(raw any) (*domain.PluginData, Report) {
	tree, ok := toTree(raw)
	if !ok {
		return domain.NewPluginData(), Report{ToVersion: domain.CurrentVersion, Reset: true, Reason: "not an object"}
	}

	version := detectVersion(tree)
	report := Report{FromVersion: version}
	if version < 1 {
		report.ToVersion = domain.CurrentVersion
		report.Reset = true
		report.Reason = "missing or unsupported version"
		return domain.NewPluginData(), report
	}

	version = ApplyMigrations(tree, version)
	tree["version"] = version
	report.ToVersion = version

	data, err := decode(tree)
	if err != nil {
		report.ToVersion = domain.CurrentVersion
		report.Reset = true
		report.Reason = fmt.Sprintf("malformed data: %v", err)
		return domain.NewPluginData(), report
	}

	report.Repairs = repair(data)
	return data, report
}

// ApplyMigrations runs every step whose target version is above fromVersion and returns the
// resulting version. Versions newer than the latest step are left as they are.
func ApplyMigrations(data map[string]any, fromVersion int) int {
	version := fromVersion
	for _, m := range migrations {
		if version < m.ToVersion {
			m.Migrate(data)
			version = m.ToVersion
		}
	}
	return version
}

// toTree converts any JSON-serialisable value into an independent untyped object tree
func toTree(raw any) (map[string]any, bool) {
	if raw == nil {
		return nil, false
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, false
	}
	obj, ok := tree.(map[string]any)
	return obj, ok
}

func detectVersion(tree map[string]any) int {
	if v, ok := tree["version"].(float64); ok {
		return int(v)
	}
	return 0
}

func decode(tree map[string]any) (*domain.PluginData, error) {
	b, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	var data domain.PluginData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// setDefault stores value under key unless a non-null value is already there
func setDefault(obj map[string]any, key string, value any) {
	if v, ok := obj[key]; ok && v != nil {
		return
	}
	obj[key] = value
}

// ensureObject returns obj[key] as an object, creating it when absent or not an object
func ensureObject(obj map[string]any, key string) map[string]any {
	if child, ok := obj[key].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	obj[key] = child
	return child
}

func forEachBoard(data map[string]any, fn func(board map[string]any)) {
	boards, ok := data["boards"].([]any)
	if !ok {
		return
	}
	for _, b := range boards {
		if board, ok := b.(map[string]any); ok {
			fn(board)
		}
	}
}

func forEachGroup(board map[string]any, fn func(id domain.GroupID, group map[string]any)) {
	groups, ok := board["groups"].(map[string]any)
	if !ok {
		return
	}
	for _, id := range domain.GroupIDs {
		if group, ok := groups[string(id)].(map[string]any); ok {
			fn(id, group)
		}
	}
}
