// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/clawswapd/account"
	"github.com/bitmark-inc/clawswapd/fault"
	"github.com/bitmark-inc/clawswapd/util"
)

// every Pack below emits Varint64(tag) followed by the fields in
// struct order, Nonce, and finally the signature
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by clients and for debugging/testing

// Pack - RegistryInitialise
func (registryInitialise *RegistryInitialise) Pack(address *account.Account) (Packed, error) {
	if nil == registryInitialise.Authority || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(RegistryInitialiseTag))
	message = appendAccount(message, registryInitialise.Authority)
	message = appendUint64(message, registryInitialise.Nonce)

	return sign(message, address, registryInitialise.Signature)
}

// Signer - the account that must sign
func (registryInitialise *RegistryInitialise) Signer() *account.Account {
	return registryInitialise.Authority
}

// Pack - NeedCreate
func (needCreate *NeedCreate) Pack(address *account.Account) (Packed, error) {
	if nil == needCreate.Creator || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(NeedCreateTag))
	message = appendAccount(message, needCreate.Creator)
	message = appendString(message, needCreate.Title)
	message = appendString(message, needCreate.Description)
	message = appendString(message, needCreate.Category)
	message = appendUint64(message, needCreate.Budget)
	message = appendUint64(message, uint64(needCreate.Deadline))
	message = appendUint64(message, needCreate.Nonce)

	return sign(message, address, needCreate.Signature)
}

// Signer - the account that must sign
func (needCreate *NeedCreate) Signer() *account.Account {
	return needCreate.Creator
}

// Pack - NeedCancel
func (needCancel *NeedCancel) Pack(address *account.Account) (Packed, error) {
	if nil == needCancel.Creator || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(NeedCancelTag))
	message = appendUint64(message, needCancel.NeedId)
	message = appendAccount(message, needCancel.Creator)
	message = appendUint64(message, needCancel.Nonce)

	return sign(message, address, needCancel.Signature)
}

// Signer - the account that must sign
func (needCancel *NeedCancel) Signer() *account.Account {
	return needCancel.Creator
}

// Pack - OfferCreate
func (offerCreate *OfferCreate) Pack(address *account.Account) (Packed, error) {
	if nil == offerCreate.Provider || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(OfferCreateTag))
	message = appendUint64(message, offerCreate.NeedId)
	message = appendAccount(message, offerCreate.Provider)
	message = appendUint64(message, offerCreate.Price)
	message = appendString(message, offerCreate.Message)
	message = appendUint64(message, offerCreate.Nonce)

	return sign(message, address, offerCreate.Signature)
}

// Signer - the account that must sign
func (offerCreate *OfferCreate) Signer() *account.Account {
	return offerCreate.Provider
}

// Pack - OfferCancel
func (offerCancel *OfferCancel) Pack(address *account.Account) (Packed, error) {
	if nil == offerCancel.Provider || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(OfferCancelTag))
	message = appendUint64(message, offerCancel.OfferId)
	message = appendAccount(message, offerCancel.Provider)
	message = appendUint64(message, offerCancel.Nonce)

	return sign(message, address, offerCancel.Signature)
}

// Signer - the account that must sign
func (offerCancel *OfferCancel) Signer() *account.Account {
	return offerCancel.Provider
}

// Pack - DealAccept
func (dealAccept *DealAccept) Pack(address *account.Account) (Packed, error) {
	if nil == dealAccept.Client || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(DealAcceptTag))
	message = appendUint64(message, dealAccept.NeedId)
	message = appendUint64(message, dealAccept.OfferId)
	message = appendAccount(message, dealAccept.Client)
	message = appendUint64(message, dealAccept.Nonce)

	return sign(message, address, dealAccept.Signature)
}

// Signer - the account that must sign
func (dealAccept *DealAccept) Signer() *account.Account {
	return dealAccept.Client
}

// Pack - DealDeliver
func (dealDeliver *DealDeliver) Pack(address *account.Account) (Packed, error) {
	if nil == dealDeliver.Provider || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(DealDeliverTag))
	message = appendUint64(message, dealDeliver.DealId)
	message = appendAccount(message, dealDeliver.Provider)
	message = appendString(message, dealDeliver.Hash)
	message = appendString(message, dealDeliver.Content)
	message = appendUint64(message, dealDeliver.Nonce)

	return sign(message, address, dealDeliver.Signature)
}

// Signer - the account that must sign
func (dealDeliver *DealDeliver) Signer() *account.Account {
	return dealDeliver.Provider
}

// Pack - DealConfirm
func (dealConfirm *DealConfirm) Pack(address *account.Account) (Packed, error) {
	if nil == dealConfirm.Client || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(DealConfirmTag))
	message = appendUint64(message, dealConfirm.DealId)
	message = appendAccount(message, dealConfirm.Client)
	message = appendUint64(message, dealConfirm.Nonce)

	return sign(message, address, dealConfirm.Signature)
}

// Signer - the account that must sign
func (dealConfirm *DealConfirm) Signer() *account.Account {
	return dealConfirm.Client
}

// Pack - DealDispute
func (dealDispute *DealDispute) Pack(address *account.Account) (Packed, error) {
	if nil == dealDispute.Caller || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(DealDisputeTag))
	message = appendUint64(message, dealDispute.DealId)
	message = appendAccount(message, dealDispute.Caller)
	message = appendString(message, dealDispute.Reason)
	message = appendUint64(message, dealDispute.Nonce)

	return sign(message, address, dealDispute.Signature)
}

// Signer - the account that must sign
func (dealDispute *DealDispute) Signer() *account.Account {
	return dealDispute.Caller
}

// Pack - DealResolve
func (dealResolve *DealResolve) Pack(address *account.Account) (Packed, error) {
	if nil == dealResolve.Authority || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(DealResolveTag))
	message = appendUint64(message, dealResolve.DealId)
	message = appendAccount(message, dealResolve.Authority)
	message = appendUint64(message, uint64(dealResolve.Resolution))
	message = appendUint64(message, dealResolve.Nonce)

	return sign(message, address, dealResolve.Signature)
}

// Signer - the account that must sign
func (dealResolve *DealResolve) Signer() *account.Account {
	return dealResolve.Authority
}

// Pack - BarterCreate
func (barterCreate *BarterCreate) Pack(address *account.Account) (Packed, error) {
	if nil == barterCreate.Initiator || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterCreateTag))
	message = appendAccount(message, barterCreate.Initiator)
	message = appendString(message, barterCreate.Offer)
	message = appendString(message, barterCreate.Want)
	message = appendOptionalAccount(message, barterCreate.Target)
	message = appendUint64(message, barterCreate.Nonce)

	return sign(message, address, barterCreate.Signature)
}

// Signer - the account that must sign
func (barterCreate *BarterCreate) Signer() *account.Account {
	return barterCreate.Initiator
}

// Pack - BarterAccept
func (barterAccept *BarterAccept) Pack(address *account.Account) (Packed, error) {
	if nil == barterAccept.Caller || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterAcceptTag))
	message = appendUint64(message, barterAccept.BarterId)
	message = appendAccount(message, barterAccept.Caller)
	message = appendUint64(message, barterAccept.Nonce)

	return sign(message, address, barterAccept.Signature)
}

// Signer - the account that must sign
func (barterAccept *BarterAccept) Signer() *account.Account {
	return barterAccept.Caller
}

// Pack - BarterDeliver
func (barterDeliver *BarterDeliver) Pack(address *account.Account) (Packed, error) {
	if nil == barterDeliver.Caller || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterDeliverTag))
	message = appendUint64(message, barterDeliver.BarterId)
	message = appendAccount(message, barterDeliver.Caller)
	message = appendString(message, barterDeliver.Content)
	message = appendString(message, barterDeliver.Hash)
	message = appendUint64(message, barterDeliver.Nonce)

	return sign(message, address, barterDeliver.Signature)
}

// Signer - the account that must sign
func (barterDeliver *BarterDeliver) Signer() *account.Account {
	return barterDeliver.Caller
}

// Pack - BarterConfirm
func (barterConfirm *BarterConfirm) Pack(address *account.Account) (Packed, error) {
	if nil == barterConfirm.Caller || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterConfirmTag))
	message = appendUint64(message, barterConfirm.BarterId)
	message = appendAccount(message, barterConfirm.Caller)
	message = appendUint64(message, barterConfirm.Nonce)

	return sign(message, address, barterConfirm.Signature)
}

// Signer - the account that must sign
func (barterConfirm *BarterConfirm) Signer() *account.Account {
	return barterConfirm.Caller
}

// Pack - BarterCancel
func (barterCancel *BarterCancel) Pack(address *account.Account) (Packed, error) {
	if nil == barterCancel.Initiator || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterCancelTag))
	message = appendUint64(message, barterCancel.BarterId)
	message = appendAccount(message, barterCancel.Initiator)
	message = appendUint64(message, barterCancel.Nonce)

	return sign(message, address, barterCancel.Signature)
}

// Signer - the account that must sign
func (barterCancel *BarterCancel) Signer() *account.Account {
	return barterCancel.Initiator
}

// Pack - BarterDispute
func (barterDispute *BarterDispute) Pack(address *account.Account) (Packed, error) {
	if nil == barterDispute.Caller || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BarterDisputeTag))
	message = appendUint64(message, barterDispute.BarterId)
	message = appendAccount(message, barterDispute.Caller)
	message = appendString(message, barterDispute.Reason)
	message = appendUint64(message, barterDispute.Nonce)

	return sign(message, address, barterDispute.Signature)
}

// Signer - the account that must sign
func (barterDispute *BarterDispute) Signer() *account.Account {
	return barterDispute.Caller
}

// Pack - BalanceCredit
func (credit *BalanceCredit) Pack(address *account.Account) (Packed, error) {
	if nil == credit.Account || nil == address {
		return nil, fault.MissingParameters
	}

	message := util.ToVarint64(uint64(BalanceCreditTag))
	message = appendAccount(message, credit.Account)
	message = appendUint64(message, credit.Amount)
	message = appendUint64(message, credit.Nonce)

	return sign(message, address, credit.Signature)
}

// Signer - the account that must sign
func (credit *BalanceCredit) Signer() *account.Account {
	return credit.Account
}

// check the signature and append it
func sign(message Packed, address *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return message, fault.InvalidSignature
	}

	err := address.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, signature), nil
}

// append a length prefixed string to a buffer
func appendString(buffer Packed, s string) Packed {
	return util.AppendString(buffer, s)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	return util.AppendBytes(buffer, address.Bytes())
}

// nil is packed as an empty field
func appendOptionalAccount(buffer Packed, address *account.Account) Packed {
	if nil == address {
		return util.AppendBytes(buffer, []byte{})
	}
	return appendAccount(buffer, address)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	return util.AppendBytes(buffer, data)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendUint64(buffer, value)
}
