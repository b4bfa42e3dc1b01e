package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/lessonplan"
	"github.com/abhisek/keypals/internal/router"
	"github.com/abhisek/keypals/internal/screens/practice"
)

func testModel() AppModel {
	return newAppModel(context.Background(), Options{
		Lessons:   lessonplan.NewService(nil, lessonplan.DefaultConfig(), nil),
		Templates: catalog.ForAge(8),
		Learner:   practice.Learner{Age: 8},
	})
}

func TestApp_PickTemplateAndGoBack(t *testing.T) {
	m := testModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(AppModel)
	assert.Equal(t, 100, m.width)
	assert.True(t, m.View().AltScreen)

	// Esc on the home screen does nothing.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &practice.PracticeScreen{}, push.Screen)

	_, cmd = m.Update(push)
	require.NotNil(t, cmd, "practice screen starts its plan on push")
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_CtrlCQuits(t *testing.T) {
	_, cmd := testModel().Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewBeforeSize(t *testing.T) {
	v := testModel().View()
	assert.True(t, v.AltScreen)
}
