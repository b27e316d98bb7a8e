package pkgmgr

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known identifier
// before no suggestion is offered.
const maxSuggestDistance = 2

type key struct {
	id     ID
	intent Intent
}

// Registry maps (manager, intent) pairs to the command that answers them.
type Registry struct {
	specs map[key]CommandSpec
}

// NewRegistry returns a registry holding the built-in command table.
func NewRegistry() *Registry {
	return &Registry{specs: defaultSpecs()}
}

func defaultSpecs() map[key]CommandSpec {
	return map[key]CommandSpec{
		{Pacman, CountUpdates}:   {Name: "checkupdates", AcceptedExits: []int{0, 2}},
		{Pacman, CountInstalled}: {Name: "pacman", Args: []string{"-Q"}},

		{Apt, CountUpdates}:   {Name: "apt", Args: []string{"list", "-u"}, SkipLines: 2},
		{Apt, CountInstalled}: {Name: "apt", Args: []string{"list", "-i"}, SkipLines: 2},

		{Xbps, CountUpdates}:   {Name: "xbps-install", Args: []string{"-Sun"}},
		{Xbps, CountInstalled}: {Name: "xbps-query", Args: []string{"-l"}},

		{Portage, CountUpdates}: {
			Name:          "eix",
			Args:          []string{"-u", "--format", "<installedversions:nameversion>"},
			Parser:        ParseSentinel,
			Sentinel:      NoMatchesSentinel,
			AcceptedExits: []int{0, 1},
		},
		{Portage, CountInstalled}: {Name: "eix-installed", Args: []string{"-a"}},

		{Apk, CountUpdates}:   {Name: "apk", Args: []string{"-u", "list"}},
		{Apk, CountInstalled}: {Name: "apk", Args: []string{"info"}},

		// check-update exits 100 when upgrades are available.
		{Dnf, CountUpdates}:   {Name: "dnf", Args: []string{"check-update"}, SkipLines: 3, AcceptedExits: []int{0, 100}},
		{Dnf, CountInstalled}: {Name: "dnf", Args: []string{"list", "installed"}, SkipLines: 1},

		{Flatpak, CountUpdates}:   {Name: "flatpak", Args: []string{"remote-ls", "--updates", "--columns=application"}},
		{Flatpak, CountInstalled}: {Name: "flatpak", Args: []string{"list", "--columns=application"}},

		{Snap, CountUpdates}:   {Name: "snap", Args: []string{"refresh", "--list"}, SkipLines: 1},
		{Snap, CountInstalled}: {Name: "snap", Args: []string{"list"}, SkipLines: 1},
	}
}

// Spec returns the command for id and intent. Unknown identifiers yield an
// *UnsupportedManagerError carrying the closest known name, if any; a known
// identifier asked for an unknown intent yields ErrUnknownIntent.
func (r *Registry) Spec(id ID, intent Intent) (CommandSpec, error) {
	if !r.supported(id) {
		return CommandSpec{}, &UnsupportedManagerError{ID: id, Suggestion: r.suggest(id)}
	}
	spec, ok := r.specs[key{id, intent}]
	if !ok {
		return CommandSpec{}, fmt.Errorf("%s: %w %s", id, ErrUnknownIntent, intent)
	}
	return spec, nil
}

// supported reports whether id has an entry for every intent.
func (r *Registry) supported(id ID) bool {
	_, upd := r.specs[key{id, CountUpdates}]
	_, inst := r.specs[key{id, CountInstalled}]
	return upd && inst
}

// IDs returns the known identifiers in sorted order.
func (r *Registry) IDs() []ID {
	seen := make(map[ID]bool)
	var ids []ID
	for k := range r.specs {
		if !seen[k.id] {
			seen[k.id] = true
			ids = append(ids, k.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) suggest(id ID) ID {
	best, bestDist := ID(""), maxSuggestDistance+1
	for _, known := range r.IDs() {
		if d := levenshtein.ComputeDistance(string(id), string(known)); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}
