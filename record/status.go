// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/clawswapd/fault"
)

// NeedStatus - lifecycle of a need
type NeedStatus uint8

// need states
const (
	NeedOpen       NeedStatus = iota
	NeedInProgress NeedStatus = iota
	NeedCompleted  NeedStatus = iota
	NeedCancelled  NeedStatus = iota
	needLimit      NeedStatus = iota
)

// OfferStatus - lifecycle of an offer
type OfferStatus uint8

// offer states
const (
	OfferPending   OfferStatus = iota
	OfferAccepted  OfferStatus = iota
	OfferRejected  OfferStatus = iota // no operation produces this
	OfferCancelled OfferStatus = iota
	offerLimit     OfferStatus = iota
)

// DealStatus - lifecycle of a deal
type DealStatus uint8

// deal states
const (
	DealInProgress        DealStatus = iota
	DealDeliverySubmitted DealStatus = iota
	DealCompleted         DealStatus = iota
	DealDisputed          DealStatus = iota
	DealCancelled         DealStatus = iota
	dealLimit             DealStatus = iota
)

// BarterStatus - lifecycle of a barter
type BarterStatus uint8

// barter states
const (
	BarterOpen       BarterStatus = iota
	BarterInProgress BarterStatus = iota
	BarterCompleted  BarterStatus = iota
	BarterCancelled  BarterStatus = iota
	BarterDisputed   BarterStatus = iota
	barterLimit      BarterStatus = iota
)

// Resolution - outcome of a deal dispute
type Resolution uint8

// dispute outcomes
const (
	RefundClient    Resolution = iota
	PayProvider     Resolution = iota
	resolutionLimit Resolution = iota
)

var (
	needNames       = []string{"Open", "InProgress", "Completed", "Cancelled"}
	offerNames      = []string{"Pending", "Accepted", "Rejected", "Cancelled"}
	dealNames       = []string{"InProgress", "DeliverySubmitted", "Completed", "Disputed", "Cancelled"}
	barterNames     = []string{"Open", "InProgress", "Completed", "Cancelled", "Disputed"}
	resolutionNames = []string{"RefundClient", "PayProvider"}
)

func name(names []string, n uint8) string {
	if int(n) < len(names) {
		return names[n]
	}
	return "*unknown*"
}

func lookup(names []string, s string) (uint8, error) {
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fault.InvalidStatus
}

func (s NeedStatus) String() string   { return name(needNames, uint8(s)) }
func (s OfferStatus) String() string  { return name(offerNames, uint8(s)) }
func (s DealStatus) String() string   { return name(dealNames, uint8(s)) }
func (s BarterStatus) String() string { return name(barterNames, uint8(s)) }
func (r Resolution) String() string   { return name(resolutionNames, uint8(r)) }

// IsTerminal - no further transitions are possible
func (s NeedStatus) IsTerminal() bool { return NeedCompleted == s || NeedCancelled == s }

// IsTerminal - no further transitions are possible
func (s DealStatus) IsTerminal() bool { return DealCompleted == s || DealCancelled == s }

// IsTerminal - no further transitions are possible
func (s BarterStatus) IsTerminal() bool {
	return BarterCompleted == s || BarterCancelled == s || BarterDisputed == s
}

// MarshalText - status name for JSON
func (s NeedStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText - status name for JSON
func (s OfferStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText - status name for JSON
func (s DealStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText - status name for JSON
func (s BarterStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText - resolution name for JSON
func (r Resolution) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText - status from name
func (s *NeedStatus) UnmarshalText(text []byte) error {
	n, err := lookup(needNames, string(text))
	*s = NeedStatus(n)
	return err
}

// UnmarshalText - status from name
func (s *OfferStatus) UnmarshalText(text []byte) error {
	n, err := lookup(offerNames, string(text))
	*s = OfferStatus(n)
	return err
}

// UnmarshalText - status from name
func (s *DealStatus) UnmarshalText(text []byte) error {
	n, err := lookup(dealNames, string(text))
	*s = DealStatus(n)
	return err
}

// UnmarshalText - status from name
func (s *BarterStatus) UnmarshalText(text []byte) error {
	n, err := lookup(barterNames, string(text))
	*s = BarterStatus(n)
	return err
}

// UnmarshalText - resolution from name
func (r *Resolution) UnmarshalText(text []byte) error {
	n, err := lookup(resolutionNames, string(text))
	if nil != err {
		return fault.InvalidResolution
	}
	*r = Resolution(n)
	return nil
}

// IsValid - resolution is one of the defined values
func (r Resolution) IsValid() bool {
	return r < resolutionLimit
}
