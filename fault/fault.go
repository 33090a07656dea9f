// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RecordError   GenericError
)

// IsErrExists - test the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - test the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - test the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - test the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - test the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - test the class of an error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	AssetAlreadyExists            = ExistsError("asset already exists")
	AssetNotFound                 = NotFoundError("asset not found")
	AssetNotTransferable          = ProcessError("asset not transferable")
	CannotDecodeRecord            = RecordError("cannot decode record")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	CertificateFileNotFound       = NotFoundError("certificate file not found")
	ChecksumMismatch              = InvalidError("checksum mismatch")
	ClockNotAdjustable            = ProcessError("clock not adjustable")
	DataInconsistent              = ProcessError("data inconsistent")
	EscrowAlreadyActive           = ExistsError("escrow already active")
	EscrowAlreadyFunded           = ExistsError("escrow already funded")
	EscrowAlreadyRefunded         = ExistsError("escrow already refunded")
	EscrowAlreadySettled          = ExistsError("escrow already settled")
	EscrowExpired                 = RecordError("escrow record has expired")
	EscrowNotFound                = NotFoundError("escrow not found")
	EscrowNotFunded               = ProcessError("escrow not funded")
	EscrowNotYetExpired           = RecordError("escrow record has not yet expired")
	IncompatibleDatabaseVersion   = ProcessError("incompatible database version")
	InsufficientFunds             = ProcessError("insufficient funds")
	InsufficientTokens            = ProcessError("insufficient tokens")
	InvalidAssetId                = InvalidError("invalid asset id")
	InvalidBackupFile             = InvalidError("invalid backup file")
	InvalidConfigurationFile      = InvalidError("invalid configuration file")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidDuration               = InvalidError("invalid duration")
	InvalidFeeAmount              = InvalidError("invalid fee amount")
	InvalidIdentity               = InvalidError("invalid identity")
	InvalidIdentityLength         = LengthError("invalid identity length")
	InvalidIpAddress              = InvalidError("invalid ip address")
	InvalidMode                   = InvalidError("invalid mode")
	InvalidNetwork                = InvalidError("invalid network")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidReference              = InvalidError("invalid reference")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	InvalidTokenAmount            = InvalidError("invalid token amount")
	InvalidValuation              = InvalidError("invalid valuation")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	KeyFileNotFound               = NotFoundError("key file not found")
	LicenseeIsOwner               = InvalidError("licensee is the asset owner")
	LicensorMismatch              = InvalidError("licensor does not match the escrow record")
	MissingParameters             = InvalidError("missing parameters")
	NotAHolderList                = RecordError("not a holder list")
	NotAnAssetRecord              = RecordError("not an asset record")
	NotAnEscrowRecord             = RecordError("not an escrow record")
	NotAssetOwner                 = InvalidError("not the asset owner")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotEscrowLicensee             = InvalidError("not the escrow licensee")
	NotEscrowLicensor             = InvalidError("not the escrow licensor")
	NotInitialised                = NotFoundError("not initialised")
	NotOwnerOrAdministrator       = InvalidError("not the owner or administrator")
	NotTokenOwner                 = InvalidError("not the token owner")
	RateLimiting                  = ProcessError("rate limiting")
	SelfTransferNotAllowed        = InvalidError("self transfer is not allowed")
	SettlementFailed              = ProcessError("settlement failed")
	TooManyHolders                = LengthError("too many holders")
	TransactionAlreadyInProgress  = ExistsError("transaction already in progress")
	WrongNetworkForData           = InvalidError("database is for a different network")
	WrongNetworkForIdentity       = InvalidError("identity is for a different network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }
