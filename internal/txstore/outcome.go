package txstore

import "fmt"

// OutcomeKind enumerates what a mutating operation did.
type OutcomeKind int

const (
	Inserted OutcomeKind = iota
	Updated
	Removed
	OperationFailure
	DatabaseNotFound
	KeyAlreadyExists
	TxAlreadyExists
)

var outcomeKindStrings = map[OutcomeKind]string{
	Inserted:         "Inserted",
	Updated:          "Updated",
	Removed:          "Removed",
	OperationFailure: "OperationFailure",
	DatabaseNotFound: "DatabaseNotFound",
	KeyAlreadyExists: "KeyAlreadyExists",
	TxAlreadyExists:  "TxAlreadyExists",
}

func (k OutcomeKind) String() string {
	if s := outcomeKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown OutcomeKind (%d)", int(k))
}

// Outcome is the result of a mutating storage operation. Reason is only set
// for OperationFailure.
//
// AddTransaction produces Inserted and TxAlreadyExists; the other kinds are
// reserved for update and delete operations.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

var (
	OutcomeInserted         = Outcome{Kind: Inserted}
	OutcomeUpdated          = Outcome{Kind: Updated}
	OutcomeRemoved          = Outcome{Kind: Removed}
	OutcomeDatabaseNotFound = Outcome{Kind: DatabaseNotFound}
	OutcomeKeyAlreadyExists = Outcome{Kind: KeyAlreadyExists}
	OutcomeTxAlreadyExists  = Outcome{Kind: TxAlreadyExists}
)

// OutcomeOperationFailure returns an OperationFailure outcome carrying reason.
func OutcomeOperationFailure(reason string) Outcome {
	return Outcome{Kind: OperationFailure, Reason: reason}
}

func (o Outcome) String() string {
	if o.Kind == OperationFailure {
		return fmt.Sprintf("%s(%s)", o.Kind, o.Reason)
	}
	return o.Kind.String()
}

// AccountPolicy selects what AddTransaction does when no record exists for
// the account key.
type AccountPolicy int

const (
	// ErrIfNone fails with ErrAccountNotFound.
	ErrIfNone AccountPolicy = iota

	// CreateIfNone creates the record.
	CreateIfNone
)

func (p AccountPolicy) String() string {
	switch p {
	case ErrIfNone:
		return "ErrIfNone"
	case CreateIfNone:
		return "CreateIfNone"
	default:
		return fmt.Sprintf("Unknown AccountPolicy (%d)", int(p))
	}
}
