// Package device provides the device inventory core.
//
// A Device is a named, branded record with a lifecycle state. The package
// owns the rules that decide which mutations are legal for a given state and
// the Manager that applies those rules against a pluggable Directory.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Device Manager                          │
//	│                                                                 │
//	│  ┌──────────────────┐    ┌──────────────────┐                   │
//	│  │     Manager      │───▶│ Transition Guard │                   │
//	│  │   (manager.go)   │    │    (guard.go)    │                   │
//	│  │ • Create/Get     │    │ • ValidateUpdate │                   │
//	│  │ • List/Update    │    │ • ValidateDelete │                   │
//	│  │ • Delete/Stats   │    │ • Create default │                   │
//	│  └──────────────────┘    └──────────────────┘                   │
//	│           │                                                     │
//	└───────────│─────────────────────────────────────────────────────┘
//	            ▼
//	┌──────────────────────┐   ┌──────────────────────┐
//	│      Directory       │   │       Notifier       │
//	│ • SQLiteRepository   │   │ • MQTT / WebSocket   │
//	│ • MemoryRepository   │   │ • InfluxDB counters  │
//	└──────────────────────┘   └──────────────────────┘
//
// # Lifecycle rules
//
//   - New devices start AVAILABLE unless a state is supplied.
//   - While IN_USE, name and brand are frozen. Any update carrying either
//     field fails with ErrFieldLockedWhileInUse, even if the value is unchanged.
//   - An IN_USE device cannot be deleted (ErrDeletionBlockedWhileInUse).
//   - State text is matched case-insensitively; anything outside
//     AVAILABLE, IN_USE and INACTIVE fails with ErrInvalidState.
//
// # Usage
//
//	repo := device.NewSQLiteRepository(db.DB)
//	mgr := device.NewManager(repo)
//	mgr.SetLogger(log)
//
//	d, err := mgr.Create(ctx, "Phone X", "Samsung", nil)
//	inUse := "in_use"
//	d, err = mgr.Update(ctx, d.ID, device.Changes{State: &inUse})
//
// # Thread Safety
//
// The Manager holds no mutable state of its own and is safe for concurrent
// use. No lock spans the read-modify-write in Update and Delete, so two
// concurrent updates to the same device may overwrite each other.
package device
