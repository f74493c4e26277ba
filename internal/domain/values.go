// Package domain defines the value types and entities of the address book:
// clients, the projects they commission and the issues tracked against them.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constraint messages surfaced verbatim when a field fails validation.
const (
	NameConstraints       = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	TitleConstraints      = "Titles can take any values, and it should not be blank"
	DeadlineConstraints   = "Deadlines should be entered in yyyy-mm-dd date format with a year from 1900 to 2099, a month from 01 to 12 and a valid day of that month"
	RepositoryConstraints = "Repository should be entered in <Username/RepoName> format"
	PhoneConstraints      = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints      = "Emails should be of the format local-part@domain, where the local part starts with an alphanumeric character"
	PriorityConstraints   = "Priority should be 0 (LOW), 1 (MEDIUM) or 2 (HIGH)"
	StatusConstraints     = "Status should be either true (complete) or false (incomplete)"
	IDConstraints         = "%s ID must be a positive integer"
)

var (
	nameRegex       = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	titleRegex      = regexp.MustCompile(`^\S.*$`)
	deadlineRegex   = regexp.MustCompile(`^(19|20)\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	repositoryRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,38}/[A-Za-z0-9._-]+$`)
	phoneRegex      = regexp.MustCompile(`^\d{3,}$`)
	emailRegex      = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9+_.-]*@[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)
	idRegex         = regexp.MustCompile(`^\d+$`)
)

// DeadlineLayout is the canonical (and persisted) deadline format.
const DeadlineLayout = "2006-01-02"

// check runs the ozzo rules against raw and converts any failure into a
// ValidationError carrying the field's constraint message.
func check(field, message, raw string, rules ...validation.Rule) error {
	if err := validation.Validate(raw, rules...); err != nil {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}

// Name is the name of a client or project.
type Name string

// IsValidName reports whether raw is a valid name.
func IsValidName(raw string) bool {
	return check("name", NameConstraints, raw, validation.Required, validation.Match(nameRegex)) == nil
}

// ParseName trims and validates raw.
func ParseName(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	if err := check("name", NameConstraints, raw, validation.Required, validation.Match(nameRegex)); err != nil {
		return "", err
	}
	return Name(raw), nil
}

func (n Name) String() string { return string(n) }
func (n Name) UI() string     { return string(n) }

// Title is the description of an issue.
type Title string

// IsValidTitle reports whether raw is a valid issue title.
func IsValidTitle(raw string) bool {
	return check("title", TitleConstraints, raw, validation.Required, validation.Match(titleRegex)) == nil
}

// ParseTitle trims and validates raw.
func ParseTitle(raw string) (Title, error) {
	raw = strings.TrimSpace(raw)
	if err := check("title", TitleConstraints, raw, validation.Required, validation.Match(titleRegex)); err != nil {
		return "", err
	}
	return Title(raw), nil
}

func (t Title) String() string { return string(t) }
func (t Title) UI() string     { return string(t) }

// Deadline is an optional calendar date stored in DeadlineLayout.
// The zero value is the empty deadline.
type Deadline string

// NoDeadline is the empty deadline.
const NoDeadline Deadline = ""

// IsValidDeadline reports whether raw is a yyyy-mm-dd date between 1900 and 2099
// that exists on the calendar.
func IsValidDeadline(raw string) bool {
	if !deadlineRegex.MatchString(raw) {
		return false
	}
	_, err := time.Parse(DeadlineLayout, raw)
	return err == nil
}

// ParseDeadline trims and validates raw.
func ParseDeadline(raw string) (Deadline, error) {
	raw = strings.TrimSpace(raw)
	if err := check("deadline", DeadlineConstraints, raw, validation.Required, validation.Match(deadlineRegex)); err != nil {
		return NoDeadline, err
	}
	if _, err := time.Parse(DeadlineLayout, raw); err != nil {
		return NoDeadline, &ValidationError{Field: "deadline", Message: DeadlineConstraints}
	}
	return Deadline(raw), nil
}

func (d Deadline) IsEmpty() bool  { return d == NoDeadline }
func (d Deadline) String() string { return string(d) }

// Date returns the parsed date; the zero time for the empty deadline.
func (d Deadline) Date() time.Time {
	t, _ := time.Parse(DeadlineLayout, string(d))
	return t
}

func (d Deadline) UI() string {
	if d.IsEmpty() {
		return "No Deadline Set"
	}
	return "Due by: " + d.Date().Format("Jan 2 2006")
}

// Repository is an optional GitHub repository in owner/name form.
type Repository string

// NoRepository is the empty repository.
const NoRepository Repository = ""

// IsValidRepository reports whether raw is an owner/name repository.
func IsValidRepository(raw string) bool {
	return repositoryRegex.MatchString(raw)
}

// ParseRepository trims and validates raw.
func ParseRepository(raw string) (Repository, error) {
	raw = strings.TrimSpace(raw)
	if err := check("repository", RepositoryConstraints, raw, validation.Required, validation.Match(repositoryRegex)); err != nil {
		return NoRepository, err
	}
	return Repository(raw), nil
}

func (r Repository) IsEmpty() bool  { return r == NoRepository }
func (r Repository) String() string { return string(r) }

// URL returns the GitHub URL of the repository, or "" when unset.
func (r Repository) URL() string {
	if r.IsEmpty() {
		return ""
	}
	return "https://github.com/" + string(r)
}

// Split returns the owner and name parts.
func (r Repository) Split() (owner, name string) {
	owner, name, _ = strings.Cut(string(r), "/")
	return owner, name
}

func (r Repository) UI() string {
	if r.IsEmpty() {
		return "No Repository Set"
	}
	return r.URL()
}

// Phone is an optional client phone number.
type Phone string

// NoPhone is the empty phone number.
const NoPhone Phone = ""

// IsValidPhone reports whether raw is a phone number of at least three digits.
func IsValidPhone(raw string) bool {
	return phoneRegex.MatchString(raw)
}

// ParsePhone trims and validates raw.
func ParsePhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)
	if err := check("phone", PhoneConstraints, raw, validation.Required, validation.Match(phoneRegex)); err != nil {
		return NoPhone, err
	}
	return Phone(raw), nil
}

func (p Phone) IsEmpty() bool  { return p == NoPhone }
func (p Phone) String() string { return string(p) }

func (p Phone) UI() string {
	if p.IsEmpty() {
		return "No Phone Set"
	}
	return string(p)
}

// Email is an optional client email address.
type Email string

// NoEmail is the empty email address.
const NoEmail Email = ""

// IsValidEmail reports whether raw looks like local-part@domain.
func IsValidEmail(raw string) bool {
	return emailRegex.MatchString(raw)
}

// ParseEmail trims and validates raw.
func ParseEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(raw)
	if err := check("email", EmailConstraints, raw, validation.Required, validation.Match(emailRegex)); err != nil {
		return NoEmail, err
	}
	return Email(raw), nil
}

func (e Email) IsEmpty() bool  { return e == NoEmail }
func (e Email) String() string { return string(e) }

func (e Email) UI() string {
	if e.IsEmpty() {
		return "No Email Set"
	}
	return string(e)
}

// Priority is the urgency of an issue.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

var priorityInputs = map[string]Priority{
	"0": PriorityLow, "low": PriorityLow,
	"1": PriorityMedium, "medium": PriorityMedium,
	"2": PriorityHigh, "high": PriorityHigh,
}

// IsValidPriority reports whether raw names a priority (0/1/2 or low/medium/high).
func IsValidPriority(raw string) bool {
	_, ok := priorityInputs[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ParsePriority accepts 0/1/2 or the priority names in any case.
func ParsePriority(raw string) (Priority, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if err := check("priority", PriorityConstraints, key, validation.Required,
		validation.In("0", "1", "2", "low", "medium", "high")); err != nil {
		return PriorityLow, err
	}
	return priorityInputs[key], nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return strconv.Itoa(int(p))
}

func (p Priority) UI() string { return "Priority: " + p.String() }

// Status is the completion state of an issue.
type Status bool

const (
	Incomplete Status = false
	Complete   Status = true
)

var statusInputs = map[string]Status{
	"true": Complete, "complete": Complete, "completed": Complete,
	"false": Incomplete, "incomplete": Incomplete,
}

// IsValidStatus reports whether raw names a status.
func IsValidStatus(raw string) bool {
	_, ok := statusInputs[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ParseStatus accepts true/false or complete/incomplete in any case.
func ParseStatus(raw string) (Status, error) {
	s, ok := statusInputs[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return Incomplete, &ValidationError{Field: "status", Message: StatusConstraints}
	}
	return s, nil
}

func (s Status) String() string { return strconv.FormatBool(bool(s)) }

func (s Status) UI() string {
	if s {
		return "Completed"
	}
	return "Incomplete"
}

// ParseID parses a positive integer identifier. kind names the entity in the
// error message ("Project", "Client", "Issue").
func ParseID(kind, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	message := fmt.Sprintf(IDConstraints, kind)
	field := strings.ToLower(kind) + " id"
	if err := check(field, message, raw, validation.Required, validation.Match(idRegex)); err != nil {
		return 0, err
	}
	// ozzo skips zero values in Min, so the lower bound is checked by hand.
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, &ValidationError{Field: field, Message: message}
	}
	return id, nil
}

// IDUI renders an identifier the way lists display it.
func IDUI(id int) string {
	return fmt.Sprintf("(#%d)", id)
}
