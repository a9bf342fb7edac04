// Package discovery advertises and finds inventory servers over mDNS.
//
// A server registers one DNS-SD instance:
//
//	<site name>._devinventory._tcp.local.  TXT path=/api/v1 site=<id> version=<v>
//
// inventoryctl's discover command uses Browse to list them.
package discovery
