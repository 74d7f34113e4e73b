package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_gateway/internal/domain/entities"
	mock_interfaces "mecanica_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOutboundDispatcher_NormalizeDestination(t *testing.T) {
	d := NewOutboundDispatcher(nil, "")
	cases := map[string]string{
		"5511999998888":     "5511999998888",
		"+55 11 99999-8888": "5511999998888",
		"11999998888":       "5511999998888",
		"(11) 99999-8888":   "5511999998888",
		"":                  "",
		"sem numero":        "",
	}
	for in, want := range cases {
		if got := d.NormalizeDestination(in); got != want {
			t.Fatalf("NormalizeDestination(%q) = %q, want %q", in, got, want)
		}
	}

	if got := NewOutboundDispatcher(nil, "+1").NormalizeDestination("2025550100"); got != "12025550100" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestOutboundDispatcher_Dispatch(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIMessagingProvider(ctrl)
		provider.EXPECT().SendText(gomock.Any(), "5511999998888", "olá").Return("wamid.out", nil)

		res := NewOutboundDispatcher(provider, "55").Dispatch(context.Background(), entities.OutboundReply{To: "11999998888", Body: "olá"})
		if !res.Delivered || res.ProviderMessageID != "wamid.out" || res.To != "5511999998888" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("provider failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIMessagingProvider(ctrl)
		provider.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("401"))

		res := NewOutboundDispatcher(provider, "55").Dispatch(context.Background(), entities.OutboundReply{To: "5511999998888", Body: "olá"})
		if res.Delivered {
			t.Fatalf("expected undelivered result")
		}
	})

	t.Run("empty body is not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIMessagingProvider(ctrl)

		res := NewOutboundDispatcher(provider, "55").Dispatch(context.Background(), entities.OutboundReply{To: "5511999998888", Body: "  "})
		if res.Delivered {
			t.Fatalf("expected undelivered result")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		res := NewOutboundDispatcher(nil, "55").Dispatch(context.Background(), entities.OutboundReply{To: "5511999998888", Body: "olá"})
		if res.Delivered {
			t.Fatalf("expected undelivered result")
		}
	})
}
