package delivery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/delivery"
)

func TestStubChannelAlwaysSucceeds(t *testing.T) {
	var ch delivery.Channel = delivery.StubChannel{}
	assert.NoError(t, ch.Send(context.Background(), "9647701234567", "مرحباً"))
	assert.NoError(t, ch.Send(context.Background(), "", ""))
}

func TestWhatsAppLink(t *testing.T) {
	cases := []struct {
		phone   string
		message string
		want    string
	}{
		{"9647701234567", "مرحبا", "https://wa.me/9647701234567?text=%D9%85%D8%B1%D8%AD%D8%A8%D8%A7"},
		{"+964 770-123(4567)", "hi there", "https://wa.me/9647701234567?text=hi+there"},
		{"9647701234567", "", "https://wa.me/9647701234567?text="},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, delivery.WhatsAppLink(c.phone, c.message), "phone %q", c.phone)
	}
}
