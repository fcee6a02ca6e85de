package wakelock_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
)

func TestRequestAlreadyGone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown object",
			err:  dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownObject"},
			want: true,
		},
		{
			name: "unknown method wrapped",
			err:  fmt.Errorf("close: %w", &dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}),
			want: true,
		},
		{
			name: "access denied",
			err:  dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection closed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wakelock.RequestAlreadyGone(tt.err))
		})
	}
}
