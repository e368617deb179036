package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu_InitiallyClosed(t *testing.T) {
	var m Menu

	assert.False(t, m.IsOpen())
	assert.Equal(t, MenuClosed, m.State())
}

func TestMenu_TogglePresses(t *testing.T) {
	for presses := 0; presses <= 6; presses++ {
		var m Menu

		for i := 0; i < presses; i++ {
			m.Toggle()
		}

		assert.Equal(t, presses%2 == 1, m.IsOpen(), "after %d presses", presses)
	}
}

func TestMenu_SelectCloses(t *testing.T) {
	for presses := 0; presses <= 5; presses++ {
		var m Menu

		for i := 0; i < presses; i++ {
			m.Toggle()
		}

		m.Select()
		assert.Equal(t, MenuClosed, m.State(), "after %d presses", presses)
	}
}

func TestMenu_Sequence(t *testing.T) {
	var (
		m      Menu
		states = []MenuState{m.State()}
	)

	m.Toggle()
	states = append(states, m.State())
	m.Toggle()
	states = append(states, m.State())
	m.Select()
	states = append(states, m.State())

	assert.Equal(t, []MenuState{MenuClosed, MenuOpen, MenuClosed, MenuClosed}, states)
}

func TestMenuFromQuery(t *testing.T) {
	assert.True(t, MenuFromQuery("open").IsOpen())
	assert.False(t, MenuFromQuery("").IsOpen())
	assert.False(t, MenuFromQuery("closed").IsOpen())
	assert.False(t, MenuFromQuery("OPEN").IsOpen())
}

func TestMenu_ToggleHref(t *testing.T) {
	var m Menu

	assert.Equal(t, "/fleet?menu=open", m.ToggleHref("/fleet"))

	m.Toggle()
	assert.Equal(t, "/fleet", m.ToggleHref("/fleet"))
	assert.True(t, m.IsOpen(), "ToggleHref must not change the state")
}

func TestMenuState_String(t *testing.T) {
	assert.Equal(t, "closed", MenuClosed.String())
	assert.Equal(t, "open", MenuOpen.String())
}
