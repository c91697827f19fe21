package ledger

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boostoracle/internal/domain"
)

type fakeCaller struct {
	lastCall ethereum.CallMsg
	out      []byte
	err      error
}

func (f *fakeCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.lastCall = call
	return f.out, f.err
}

func packedOffer(t *testing.T, receiver common.Address, acceptedAt, duration uint64, url string, kind, state uint8) []byte {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(getOfferABI))
	require.NoError(t, err)
	out, err := parsed.Methods["getOffer"].Outputs.Pack(receiver, acceptedAt, duration, url, kind, state)
	require.NoError(t, err)
	return out
}

func TestGetOfferDecodesRecord(t *testing.T) {
	receiver := common.HexToAddress("0x2222222222222222222222222222222222222222")
	caller := &fakeCaller{out: packedOffer(t, receiver, 1000, 60_000, "https://social.example/post/x", 1, 1)}

	contract := common.HexToAddress("0x3333333333333333333333333333333333333333")
	c, err := NewClient(caller, contract)
	require.NoError(t, err)

	rec, err := c.GetOffer(context.Background(), domain.OfferID(5))
	require.NoError(t, err)

	assert.Equal(t, receiver, rec.Receiver)
	assert.Equal(t, uint64(1000), rec.AcceptedAtMs)
	assert.Equal(t, uint64(60_000), rec.DurationMs)
	assert.Equal(t, "https://social.example/post/x", rec.ContentURL)
	assert.Equal(t, uint8(1), rec.KindSelector)
	assert.Equal(t, uint8(1), rec.State)

	// The call must target the bound contract with the packed id.
	require.NotNil(t, caller.lastCall.To)
	assert.Equal(t, contract, *caller.lastCall.To)
	assert.Equal(t, new(big.Int).SetUint64(5).Bytes(), new(big.Int).SetBytes(caller.lastCall.Data[4:]).Bytes())
}

func TestGetOfferPropagatesRPCError(t *testing.T) {
	c, err := NewClient(&fakeCaller{err: errors.New("connection refused")}, common.Address{})
	require.NoError(t, err)

	_, err = c.GetOffer(context.Background(), 5)
	assert.ErrorContains(t, err, "connection refused")
}

func TestGetOfferRejectsTruncatedOutput(t *testing.T) {
	c, err := NewClient(&fakeCaller{out: []byte{0x01, 0x02}}, common.Address{})
	require.NoError(t, err)

	_, err = c.GetOffer(context.Background(), 5)
	assert.Error(t, err)
}

func TestDialRejectsBadContractAddress(t *testing.T) {
	_, err := Dial(context.Background(), "http://localhost:8545", "not-an-address")
	assert.ErrorContains(t, err, "contract address")
}

func TestNewClientRequiresCaller(t *testing.T) {
	_, err := NewClient(nil, common.Address{})
	assert.Error(t, err)
}
