// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/cpmm/actions"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/requester"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, Name)
	return &JSONRPCClient{requester: req}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		"ping",
		&struct{}{},
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) Initialize(
	ctx context.Context,
	actor codec.Address,
	action *actions.Initialize,
) (*actions.InitializeResult, error) {
	resp := new(actions.InitializeResult)
	err := cli.requester.SendRequest(
		ctx,
		"initialize",
		&InitializeArgs{Actor: actor, Initialize: *action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Deposit(
	ctx context.Context,
	actor codec.Address,
	action *actions.Deposit,
) (*actions.DepositResult, error) {
	resp := new(actions.DepositResult)
	err := cli.requester.SendRequest(
		ctx,
		"deposit",
		&DepositArgs{Actor: actor, Deposit: *action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Withdraw(
	ctx context.Context,
	actor codec.Address,
	action *actions.Withdraw,
) (*actions.WithdrawResult, error) {
	resp := new(actions.WithdrawResult)
	err := cli.requester.SendRequest(
		ctx,
		"withdraw",
		&WithdrawArgs{Actor: actor, Withdraw: *action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Swap(
	ctx context.Context,
	actor codec.Address,
	action *actions.Swap,
) (*actions.SwapResult, error) {
	resp := new(actions.SwapResult)
	err := cli.requester.SendRequest(
		ctx,
		"swap",
		&SwapArgs{Actor: actor, Swap: *action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) SetLock(
	ctx context.Context,
	actor codec.Address,
	action *actions.SetLock,
) (*actions.SetLockResult, error) {
	resp := new(actions.SetLockResult)
	err := cli.requester.SendRequest(
		ctx,
		"setLock",
		&SetLockArgs{Actor: actor, SetLock: *action},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Pool(
	ctx context.Context,
	assetX codec.Address,
	assetY codec.Address,
	seed uint64,
) (*PoolReply, error) {
	resp := new(PoolReply)
	err := cli.requester.SendRequest(
		ctx,
		"pool",
		&PoolArgs{AssetX: assetX, AssetY: assetY, Seed: seed},
		resp,
	)
	return resp, err
}

// Balance returns the balance of [account] in [asset] and the asset's total
// supply.
func (cli *JSONRPCClient) Balance(ctx context.Context, asset codec.Address, account codec.Address) (uint64, uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"balance",
		&BalanceArgs{Asset: asset, Account: account},
		resp,
	)
	return resp.Amount, resp.Supply, err
}

func (cli *JSONRPCClient) Quote(ctx context.Context, args *QuoteArgs) (uint64, error) {
	resp := new(QuoteReply)
	err := cli.requester.SendRequest(
		ctx,
		"quote",
		args,
		resp,
	)
	return resp.AmountOut, err
}
