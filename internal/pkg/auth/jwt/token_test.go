package jwt

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	room := int64(3)

	token, expiresAt, err := issuer.GenerateToken(&Payload{UserID: 7, Username: "Alice123", Role: "citizen", RoomID: &room})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	payload, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.UserID)
	assert.Equal(t, "Alice123", payload.Username)
	assert.Equal(t, room, *payload.RoomID)
	assert.NotEmpty(t, payload.Id)
	assert.Equal(t, TokenIssuer, payload.Issuer)
}

func TestIssuer_RejectsTampering(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	token, _, err := issuer.GenerateToken(&Payload{UserID: 7, Username: "Alice123", Role: "citizen"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	t.Run("flipped signature byte", func(t *testing.T) {
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := issuer.ParseToken(parts[0] + "." + parts[1] + "." + string(sig))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("role rewritten without re-signing", func(t *testing.T) {
		raw, err := base64.RawURLEncoding.DecodeString(parts[1])
		require.NoError(t, err)
		var claims map[string]any
		require.NoError(t, json.Unmarshal(raw, &claims))
		claims["role"] = "owner"
		forged, err := json.Marshal(claims)
		require.NoError(t, err)

		_, err = issuer.ParseToken(parts[0] + "." + base64.RawURLEncoding.EncodeToString(forged) + "." + parts[2])
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := NewIssuer(strings.Repeat("x", 32), time.Hour)
		forged, _, err := other.GenerateToken(&Payload{UserID: 7, Username: "Alice123", Role: "owner"})
		require.NoError(t, err)
		_, err = issuer.ParseToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := &Payload{UserID: 7, Role: "owner"}
		claims.Id = "x"
		claims.ExpiresAt = time.Now().Add(time.Hour).Unix()
		unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.ParseToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	token, _, err := issuer.GenerateToken(&Payload{UserID: 7})
	require.NoError(t, err)

	_, err = issuer.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer ", "", false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/me", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		got, err := BearerToken(r)
		if tt.ok {
			require.NoError(t, err, tt.header)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, ErrMissingToken, tt.header)
		}
	}
}
