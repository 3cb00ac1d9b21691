package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"", ViewMain, false},
		{"main", ViewMain, false},
		{"verification", ViewVerification, false},
		{"withdrawal", ViewWithdrawal, false},
		{"accounts", ViewAccounts, false},
		{"live-chat", ViewLiveChat, false},
		{"savings", ViewSavings, false},
		{"settings", ViewSettings, false},
		{"deposit", ViewDeposit, false},
		{"Live-Chat", ViewMain, true},
		{"admin", ViewMain, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseView(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestViews_ClosedSet(t *testing.T) {
	views := Views()
	assert.Len(t, views, 8)
	for _, v := range views {
		assert.True(t, v.Valid())
		assert.NotEmpty(t, v.Label())
	}
	assert.False(t, View(8).Valid())
	assert.False(t, View(-1).Valid())
	assert.Equal(t, "View(42)", View(42).String())
}

func TestNavigator(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, ViewMain, n.Current())

	require.NoError(t, n.Navigate(ViewDeposit))
	assert.Equal(t, ViewDeposit, n.Current())

	assert.Error(t, n.Navigate(View(99)))
	assert.Equal(t, ViewDeposit, n.Current(), "rejected navigation must not change the selection")

	n.Reset()
	assert.Equal(t, ViewMain, n.Current())
}

func TestNavigator_NavItems(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.Navigate(ViewLiveChat))

	items := n.NavItems()
	require.Len(t, items, 8)

	active := 0
	for _, item := range items {
		if item.Active {
			active++
			assert.Equal(t, ViewLiveChat, item.View)
			assert.Equal(t, "Live Chat", item.Label)
		}
	}
	assert.Equal(t, 1, active)
}
