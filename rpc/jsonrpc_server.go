// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/cpmm/actions"
	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

var _ Controller = (*chain.Processor)(nil)

// Controller executes actions and exposes committed state.
type Controller interface {
	Execute(ctx context.Context, action chain.Action, actor codec.Address) (codec.Typed, error)
	State() state.Immutable
}

type JSONRPCServer struct {
	c      Controller
	tracer trace.Tracer
}

func NewJSONRPCServer(c Controller, tracer trace.Tracer) *JSONRPCServer {
	return &JSONRPCServer{c: c, tracer: tracer}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (*JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	reply.Success = true
	return nil
}

type InitializeArgs struct {
	Actor codec.Address `json:"actor"`
	actions.Initialize
}

func (j *JSONRPCServer) Initialize(req *http.Request, args *InitializeArgs, reply *actions.InitializeResult) error {
	return execute(j, req, "Initialize", args.Actor, &args.Initialize, reply)
}

type DepositArgs struct {
	Actor codec.Address `json:"actor"`
	actions.Deposit
}

func (j *JSONRPCServer) Deposit(req *http.Request, args *DepositArgs, reply *actions.DepositResult) error {
	return execute(j, req, "Deposit", args.Actor, &args.Deposit, reply)
}

type WithdrawArgs struct {
	Actor codec.Address `json:"actor"`
	actions.Withdraw
}

func (j *JSONRPCServer) Withdraw(req *http.Request, args *WithdrawArgs, reply *actions.WithdrawResult) error {
	return execute(j, req, "Withdraw", args.Actor, &args.Withdraw, reply)
}

type SwapArgs struct {
	Actor codec.Address `json:"actor"`
	actions.Swap
}

func (j *JSONRPCServer) Swap(req *http.Request, args *SwapArgs, reply *actions.SwapResult) error {
	return execute(j, req, "Swap", args.Actor, &args.Swap, reply)
}

type SetLockArgs struct {
	Actor codec.Address `json:"actor"`
	actions.SetLock
}

func (j *JSONRPCServer) SetLock(req *http.Request, args *SetLockArgs, reply *actions.SetLockResult) error {
	return execute(j, req, "SetLock", args.Actor, &args.SetLock, reply)
}

type PoolArgs struct {
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	Seed   uint64        `json:"seed"`
}

type PoolReply struct {
	Address codec.Address `json:"address"`
	Vault   codec.Address `json:"vault"`
	LPToken codec.Address `json:"lpToken"`
	Pool    *storage.Pool `json:"pool"`
}

func (j *JSONRPCServer) Pool(req *http.Request, args *PoolArgs, reply *PoolReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Pool")
	defer span.End()

	address := storage.PoolAddress(args.AssetX, args.AssetY, args.Seed)
	pool, err := storage.GetPool(ctx, j.c.State(), address)
	if err != nil {
		return fmt.Errorf("%w: %w", actions.ErrPoolNotFound, err)
	}
	reply.Address = address
	reply.Vault = storage.VaultAddress(address)
	reply.LPToken = storage.LPTokenAddress(address)
	reply.Pool = pool
	return nil
}

type BalanceArgs struct {
	Asset   codec.Address `json:"asset"`
	Account codec.Address `json:"account"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
	Supply uint64 `json:"supply"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Balance")
	defer span.End()

	im := j.c.State()
	amount, err := storage.GetBalance(ctx, im, args.Asset, args.Account)
	if err != nil {
		return err
	}
	supply, err := storage.GetSupply(ctx, im, args.Asset)
	if err != nil {
		return err
	}
	reply.Amount = amount
	reply.Supply = supply
	return nil
}

type QuoteArgs struct {
	AssetX   codec.Address `json:"assetX"`
	AssetY   codec.Address `json:"assetY"`
	Seed     uint64        `json:"seed"`
	XToY     bool          `json:"xToY"`
	AmountIn uint64        `json:"amountIn"`
}

type QuoteReply struct {
	AmountOut uint64 `json:"amountOut"`
}

// Quote prices a swap against committed state without executing it.
func (j *JSONRPCServer) Quote(req *http.Request, args *QuoteArgs, reply *QuoteReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Quote")
	defer span.End()

	pool, err := storage.GetPool(ctx, j.c.State(), storage.PoolAddress(args.AssetX, args.AssetY, args.Seed))
	if err != nil {
		return fmt.Errorf("%w: %w", actions.ErrPoolNotFound, err)
	}
	swap := &actions.Swap{
		AssetX:   args.AssetX,
		AssetY:   args.AssetY,
		Seed:     args.Seed,
		XToY:     args.XToY,
		AmountIn: args.AmountIn,
	}
	amountOut, err := swap.Quote(pool)
	if err != nil {
		return err
	}
	reply.AmountOut = amountOut
	return nil
}

func execute[T any](
	j *JSONRPCServer,
	req *http.Request,
	name string,
	actor codec.Address,
	action chain.Action,
	reply *T,
) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer."+name)
	defer span.End()

	result, err := j.c.Execute(ctx, action, actor)
	if err != nil {
		return err
	}
	typed, ok := any(result).(*T)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedResult, result)
	}
	*reply = *typed
	return nil
}
