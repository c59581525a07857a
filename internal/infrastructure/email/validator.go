// Package email implements pre-signup address validation: structural
// checks, a disposable-domain denylist, and a live MX lookup. It is a
// best-effort deliverability heuristic, not a guarantee.
package email

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/api/metrics"
	"github.com/talenthub/job-portal-api/internal/core/domain"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,61}[a-zA-Z0-9](\.[a-zA-Z]{2,})+$`)
)

// defaultDenylist holds known disposable-email domains, matched by
// case-insensitive substring.
var defaultDenylist = []string{
	"tempmail.com",
	"throwawaymail.com",
	"mailinator.com",
	"temp-mail.org",
	"guerrillamail.com",
	"sharklasers.com",
}

const lookupTimeout = 5 * time.Second

// MXResolver resolves mail-exchange records. *net.Resolver satisfies it;
// tests substitute a fake.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// VerdictCache remembers recent per-domain verdicts. Optional.
type VerdictCache interface {
	Lookup(ctx context.Context, domain string) (valid, found bool)
	Store(ctx context.Context, domain string, valid bool) error
}

// Validator checks an email address before an account is created.
// Resolution failures count as invalid: the check fails closed.
type Validator struct {
	resolver MXResolver
	cache    VerdictCache
	denylist []string
	log      zerolog.Logger
}

// NewValidator builds a Validator. A nil resolver falls back to the
// default system resolver; cache may be nil.
func NewValidator(resolver MXResolver, cache VerdictCache, log zerolog.Logger) *Validator {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &Validator{
		resolver: resolver,
		cache:    cache,
		denylist: defaultDenylist,
		log:      log,
	}
}

// Validate returns domain.ErrInvalidEmailFormat for a structurally bad
// address and domain.ErrInvalidEmailDomain for a domain that is
// malformed, denylisted, or has no usable MX records.
func (v *Validator) Validate(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidEmailFormat
	}

	host := email[strings.LastIndex(email, "@")+1:]
	if !domainPattern.MatchString(host) {
		return domain.ErrInvalidEmailDomain
	}

	lower := strings.ToLower(host)
	for _, d := range v.denylist {
		if strings.Contains(lower, d) {
			return domain.ErrInvalidEmailDomain
		}
	}

	if v.cache != nil {
		if valid, found := v.cache.Lookup(ctx, lower); found {
			metrics.EmailDomainChecksTotal.WithLabelValues("cached").Inc()
			if !valid {
				return domain.ErrInvalidEmailDomain
			}
			return nil
		}
	}

	valid := v.hasUsableMX(ctx, host)
	if valid {
		metrics.EmailDomainChecksTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.EmailDomainChecksTotal.WithLabelValues("rejected").Inc()
	}

	if v.cache != nil {
		if err := v.cache.Store(ctx, lower, valid); err != nil {
			v.log.Warn().Err(err).Str("domain", lower).Msg("failed to cache domain verdict")
		}
	}

	if !valid {
		return domain.ErrInvalidEmailDomain
	}
	return nil
}

// hasUsableMX reports whether the domain resolves to at least one MX
// record with a non-empty exchange. Any resolver error reads as no.
func (v *Validator) hasUsableMX(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	records, err := v.resolver.LookupMX(ctx, host)
	if err != nil {
		v.log.Debug().Err(err).Str("domain", host).Msg("MX lookup failed")
		return false
	}
	for _, mx := range records {
		if mx != nil && mx.Host != "" {
			return true
		}
	}
	return false
}
