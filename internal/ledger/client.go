// Package ledger reads offer records from the boost escrow contract. It is
// strictly read-only: the oracle never submits transactions, it only hands
// back signatures for a separate execution step.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"boostoracle/internal/domain"
	"boostoracle/internal/offer/ports"
)

// getOfferABI is the single contract method the oracle consumes.
const getOfferABI = `[{"inputs":[{"internalType":"uint256","name":"offerId","type":"uint256"}],"name":"getOffer","outputs":[{"internalType":"address","name":"receiver","type":"address"},{"internalType":"uint64","name":"acceptedAt","type":"uint64"},{"internalType":"uint64","name":"duration","type":"uint64"},{"internalType":"string","name":"contentUrl","type":"string"},{"internalType":"uint8","name":"kind","type":"uint8"},{"internalType":"uint8","name":"state","type":"uint8"}],"stateMutability":"view","type":"function"}]`

// Caller is the slice of the RPC client the ledger reader needs.
type Caller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client implements offer ports.LedgerClient against a deployed contract.
type Client struct {
	caller   Caller
	contract common.Address
	abi      abi.ABI
}

// NewClient wraps an existing caller; Dial is the production path.
func NewClient(caller Caller, contract common.Address) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("contract caller is required")
	}
	parsed, err := abi.JSON(strings.NewReader(getOfferABI))
	if err != nil {
		return nil, fmt.Errorf("parse offer ABI: %w", err)
	}
	return &Client{caller: caller, contract: contract, abi: parsed}, nil
}

// Dial connects to the RPC endpoint and binds the contract address.
func Dial(ctx context.Context, rpcURL, contractHex string) (*Client, error) {
	if !common.IsHexAddress(contractHex) {
		return nil, fmt.Errorf("invalid contract address %q", contractHex)
	}
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger rpc: %w", err)
	}
	return NewClient(eth, common.HexToAddress(contractHex))
}

// GetOffer calls getOffer(id) at the latest block.
func (c *Client) GetOffer(ctx context.Context, id domain.OfferID) (ports.OfferRecord, error) {
	input, err := c.abi.Pack("getOffer", new(big.Int).SetUint64(uint64(id)))
	if err != nil {
		return ports.OfferRecord{}, fmt.Errorf("pack getOffer call: %w", err)
	}

	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: input}, nil)
	if err != nil {
		return ports.OfferRecord{}, fmt.Errorf("call getOffer(%d): %w", id, err)
	}

	vals, err := c.abi.Unpack("getOffer", out)
	if err != nil {
		return ports.OfferRecord{}, fmt.Errorf("decode getOffer(%d) result: %w", id, err)
	}
	if len(vals) != 6 {
		return ports.OfferRecord{}, fmt.Errorf("decode getOffer(%d) result: got %d values", id, len(vals))
	}

	rec := ports.OfferRecord{}
	var ok bool
	if rec.Receiver, ok = vals[0].(common.Address); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected receiver type %T", id, vals[0])
	}
	if rec.AcceptedAtMs, ok = vals[1].(uint64); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected acceptedAt type %T", id, vals[1])
	}
	if rec.DurationMs, ok = vals[2].(uint64); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected duration type %T", id, vals[2])
	}
	if rec.ContentURL, ok = vals[3].(string); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected contentUrl type %T", id, vals[3])
	}
	if rec.KindSelector, ok = vals[4].(uint8); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected kind type %T", id, vals[4])
	}
	if rec.State, ok = vals[5].(uint8); !ok {
		return ports.OfferRecord{}, fmt.Errorf("getOffer(%d): unexpected state type %T", id, vals[5])
	}
	return rec, nil
}
