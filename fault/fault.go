// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyConfirmed             = StateError("side already confirmed")
	AlreadyInitialised           = ExistsError("already initialised")
	BalanceOverflow              = BalanceError("balance overflow")
	BarterNotFound               = NotFoundError("barter not found")
	BarterNotInProgress          = StateError("barter is not in progress")
	BarterNotOpen                = StateError("barter is not open")
	BarterOfferTooLong           = LengthError("barter offer description exceeds 256 bytes")
	BarterWantTooLong            = LengthError("barter want description exceeds 256 bytes")
	CannotAcceptOwnBarter        = AuthorisationError("cannot accept own barter")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CategoryTooLong              = LengthError("category exceeds 32 bytes")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CryptoFailed                 = InvalidError("crypto failed")
	DealNotDisputable            = StateError("deal cannot be disputed in current state")
	DealNotDisputed              = StateError("deal is not disputed")
	DealNotFound                 = NotFoundError("deal not found")
	DealNotInProgress            = StateError("deal is not in progress")
	DeliveryContentTooLong       = LengthError("delivery content exceeds 512 bytes")
	DeliveryHashTooLong          = LengthError("delivery hash exceeds 64 bytes")
	DeliveryNotReady             = InvalidError("delivery not ready")
	DeliveryNotSubmitted         = StateError("delivery not submitted")
	DescriptionTooLong           = LengthError("description exceeds 256 bytes")
	DisputeReasonTooLong         = LengthError("dispute reason exceeds 256 bytes")
	InsufficientFunds            = BalanceError("insufficient funds")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidResolution            = InvalidError("invalid dispute resolution")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStatus                = InvalidError("invalid status")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MessageTooLong               = LengthError("message exceeds 256 bytes")
	MissingParameters            = InvalidError("missing parameters")
	NeedNotFound                 = NotFoundError("need not found")
	NeedNotOpen                  = StateError("need is not open")
	NotAuthority                 = AuthorisationError("not the arbitration authority")
	NotAvailableDuringStartup    = ProcessError("not available during startup")
	NotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	NotAvailableOnLiveChain      = ProcessError("not available on live chain")
	NotBarterInitiator           = AuthorisationError("not the barter initiator")
	NotBarterParticipant         = AuthorisationError("not a barter participant")
	NotClient                    = AuthorisationError("not the client")
	NotDealParticipant           = AuthorisationError("not a deal participant")
	NotInitialised               = NotFoundError("not initialised")
	NotNeedCreator               = AuthorisationError("not the creator of the need")
	NotPrivateKey                = InvalidError("not private key")
	NotProvider                  = AuthorisationError("not the provider")
	NotPublicKey                 = InvalidError("not public key")
	OfferNeedMismatch            = InvalidError("offer does not reference need")
	OfferNotFound                = NotFoundError("offer not found")
	OfferNotPending              = StateError("offer is not pending")
	RateLimiting                 = ProcessError("rate limiting")
	RecordTruncated              = RecordError("record truncated")
	RecordUnknownTag             = RecordError("record has unknown tag")
	TitleTooLong                 = LengthError("title exceeds 64 bytes")
	TransactionAlreadyExists     = ExistsError("transaction already exists")
	TransactionFinished          = ProcessError("transaction already finished")
	WrongBarterTarget            = InvalidError("caller is not the barter target")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e BalanceError) Error() string       { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrBalance(e error) bool       { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
