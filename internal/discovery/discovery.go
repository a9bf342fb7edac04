package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"

	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
)

// Defaults applied when the config leaves them empty.
const (
	DefaultService = "_devinventory._tcp"
	DefaultDomain  = "local."
	DefaultPath    = "/api/v1"

	// maxInstanceNameLen is the DNS-SD label limit.
	maxInstanceNameLen = 63
)

var (
	// ErrAlreadyAdvertising is returned by Start on a running advertiser.
	ErrAlreadyAdvertising = errors.New("discovery: already advertising")

	// ErrInvalidPort is returned for ports outside 1-65535.
	ErrInvalidPort = errors.New("discovery: invalid port")
)

// ServiceInfo describes the API being advertised.
type ServiceInfo struct {
	Instance string
	Port     int
	Version  string
	Path     string
	SiteID   string
}

// Advertiser announces the inventory API over mDNS.
type Advertiser struct {
	cfg config.DiscoveryConfig

	mu     sync.Mutex
	server *zeroconf.Server
}

// NewAdvertiser returns an idle advertiser for cfg.
func NewAdvertiser(cfg config.DiscoveryConfig) *Advertiser {
	return &Advertiser{cfg: cfg}
}

// Start registers the service. It fails if the named interfaces cannot be
// resolved or the port is out of range.
func (a *Advertiser) Start(info ServiceInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		return ErrAlreadyAdvertising
	}
	if info.Port <= 0 || info.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, info.Port)
	}

	ifaces, err := resolveInterfaces(a.cfg.Interfaces)
	if err != nil {
		return err
	}

	server, err := zeroconf.Register(
		instanceName(info.Instance),
		serviceOrDefault(a.cfg.Service),
		domainOrDefault(a.cfg.Domain),
		info.Port,
		TXTRecords(info),
		ifaces,
	)
	if err != nil {
		return fmt.Errorf("registering mdns service: %w", err)
	}

	a.server = server
	return nil
}

// Stop withdraws the advertisement. Safe to call when not started.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}

// Advertising reports whether Start has succeeded and Stop not yet run.
func (a *Advertiser) Advertising() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.server != nil
}

// TXTRecords builds the sorted key=value TXT strings for info.
func TXTRecords(info ServiceInfo) []string {
	path := info.Path
	if path == "" {
		path = DefaultPath
	}

	records := []string{"path=" + path}
	if info.Version != "" {
		records = append(records, "version="+info.Version)
	}
	if info.SiteID != "" {
		records = append(records, "site="+info.SiteID)
	}
	sort.Strings(records)
	return records
}

// ParseTXT splits key=value TXT strings. Entries without '=' are kept as
// keys with empty values.
func ParseTXT(records []string) map[string]string {
	out := make(map[string]string, len(records))
	for _, r := range records {
		k, v, _ := strings.Cut(r, "=")
		out[k] = v
	}
	return out
}

// Instance is one inventory server found by Browse.
type Instance struct {
	Name      string
	Host      string
	Port      int
	Addresses []string
	Version   string
	Path      string
	SiteID    string
}

// BaseURL returns the API root using the first address.
func (i Instance) BaseURL() string {
	host := i.Host
	if len(i.Addresses) > 0 {
		host = i.Addresses[0]
	}
	return "http://" + net.JoinHostPort(strings.TrimSuffix(host, "."), strconv.Itoa(i.Port)) + i.Path
}

// Browse collects inventory instances answering within timeout.
func Browse(ctx context.Context, cfg config.DiscoveryConfig, timeout time.Duration) ([]Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var opts []zeroconf.ClientOption
	ifaces, err := resolveInterfaces(cfg.Interfaces)
	if err != nil {
		return nil, err
	}
	if len(ifaces) > 0 {
		opts = append(opts, zeroconf.SelectIfaces(ifaces))
	}

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	found := make(map[string]Instance)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				inst := entryToInstance(entry)
				if existing, seen := found[inst.Name]; seen {
					inst.Addresses = mergeAddresses(existing.Addresses, inst.Addresses)
				}
				found[inst.Name] = inst
			case <-removed:
			case <-ctx.Done():
				return
			}
		}
	}()

	browseErr := zeroconf.Browse(ctx, serviceOrDefault(cfg.Service), domainOrDefault(cfg.Domain), entries, removed, opts...)
	<-ctx.Done()
	<-done

	if browseErr != nil && !errors.Is(browseErr, context.DeadlineExceeded) && !errors.Is(browseErr, context.Canceled) {
		return nil, fmt.Errorf("browsing mdns: %w", browseErr)
	}

	out := make([]Instance, 0, len(found))
	for _, inst := range found {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func entryToInstance(entry *zeroconf.ServiceEntry) Instance {
	txt := ParseTXT(entry.Text)

	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	path := txt["path"]
	if path == "" {
		path = DefaultPath
	}

	return Instance{
		Name:      entry.Instance,
		Host:      entry.HostName,
		Port:      entry.Port,
		Addresses: addrs,
		Version:   txt["version"],
		Path:      path,
		SiteID:    txt["site"],
	}
}

func mergeAddresses(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := append([]string(nil), a...)
	for _, addr := range a {
		seen[addr] = true
	}
	for _, addr := range b {
		if !seen[addr] {
			seen[addr] = true
			out = append(out, addr)
		}
	}
	return out
}

// resolveInterfaces maps names to interfaces. An empty list means all.
func resolveInterfaces(names []string) ([]net.Interface, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ifaces := make([]net.Interface, 0, len(names))
	for _, name := range names {
		iface, err := net.InterfaceByName(name)
		if err != nil {
			return nil, fmt.Errorf("resolving interface %q: %w", name, err)
		}
		ifaces = append(ifaces, *iface)
	}
	return ifaces, nil
}

func instanceName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "device-inventory"
	}
	if len(name) > maxInstanceNameLen {
		name = name[:maxInstanceNameLen]
	}
	return name
}

func serviceOrDefault(s string) string {
	if s == "" {
		return DefaultService
	}
	return s
}

func domainOrDefault(d string) string {
	if d == "" {
		return DefaultDomain
	}
	return d
}
