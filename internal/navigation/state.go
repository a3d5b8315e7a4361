package navigation

import (
	"github.com/pkg/errors"
)

// Panel identifies one of the overlays owned by the navigation bar.
type Panel string

const (
	PanelMobile  Panel = "mobile"
	PanelFinance Panel = "finance"
)

var ErrUnknownPanel = errors.New("unknown panel")

func ParsePanel(raw string) (Panel, error) {
	switch Panel(raw) {
	case PanelMobile, PanelFinance:
		return Panel(raw), nil
	default:
		return "", errors.Wrapf(ErrUnknownPanel, "'%s'", raw)
	}
}

// State is the local UI state of a navigation bar instance.
type State struct {
	MobileMenu  Toggle
	FinanceMenu Toggle
	SearchQuery string

	currentPath string
}

// CurrentPath returns the mirrored router location.
func (s *State) CurrentPath() string {
	return s.currentPath
}

// SyncLocation mirrors the router's current location into the state.
func (s *State) SyncLocation(location string) {
	if location == "" {
		location = PathHome
	}

	s.currentPath = location
}

func (s *State) Toggle(panel Panel) (*Toggle, error) {
	switch panel {
	case PanelMobile:
		return &s.MobileMenu, nil
	case PanelFinance:
		return &s.FinanceMenu, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPanel, "'%s'", panel)
	}
}

// SelectLink closes the panel hosting the selected link. It must be
// called before navigating to the link's destination.
func (s *State) SelectLink(panel Panel) error {
	toggle, err := s.Toggle(panel)
	if err != nil {
		return errors.WithStack(err)
	}

	toggle.Close()

	return nil
}

func NewState(location string) *State {
	state := &State{}
	state.SyncLocation(location)
	return state
}
