package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"performance-backend/internal/config"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryEntry is a person found in the corporate directory, used to prefill employee records
type DirectoryEntry struct {
	DN        string `json:"dn"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
}

// ldapClient is the subset of *ldap.Conn used by LDAPService
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

var directoryAttributes = []string{"displayName", "givenName", "sn", "mail", "mobile"}

// LDAPService searches the corporate directory
type LDAPService struct {
	cfg *config.Config
}

// NewLDAPService creates a new LDAP service
func NewLDAPService(cfg *config.Config) *LDAPService {
	return &LDAPService{cfg: cfg}
}

// Search finds people whose common name or mail starts with query
func (s *LDAPService) Search(query string) ([]DirectoryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []DirectoryEntry{}, nil
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	escaped := ldap.EscapeFilter(query)
	filter := "(&(objectClass=person)(|(cn=" + escaped + "*)(mail=" + escaped + "*)))"
	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		50,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		directoryAttributes,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search directory: %w", err)
	}

	out := make([]DirectoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryEntry{
			DN:        e.DN,
			FullName:  e.GetAttributeValue("displayName"),
			FirstName: e.GetAttributeValue("givenName"),
			LastName:  e.GetAttributeValue("sn"),
			Email:     e.GetAttributeValue("mail"),
			Mobile:    e.GetAttributeValue("mobile"),
		})
	}
	return out, nil
}
