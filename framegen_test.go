package framegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacadeEndToEnd(t *testing.T) {
	system := &System{
		Name: "Toggle",
		Machine: &MachineBlock{
			States: []*State{
				{
					Name: "Off",
					Handlers: []EventHandler{
						{
							Message:     MsgCustom,
							MessageName: "Flip",
						},
					},
				},
				{Name: "On"},
			},
		},
	}

	cfg := AllFeatures("v1")
	arcanium := BuildArcanum(system, DefaultSymtabConfig())
	logger := NewLogger(LogInfo)

	e := New(cfg, arcanium, nil, logger)
	assert.NotNil(t, e)
	assert.Equal(t, "", e.Code())
}

func TestStringSinkFacade(t *testing.T) {
	s := NewStringSink()
	s.Append("x")
	assert.Equal(t, "x", s.String())
}
