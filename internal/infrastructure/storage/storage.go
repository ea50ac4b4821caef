// Package storage implementa los backends del SnapshotStore: un solo blob
// JSON bajo una llave conocida, reemplazado completo en cada escritura.
package storage

// SnapshotKey llave bajo la cual se persiste el snapshot de inventario.
// Coincide con la llave histórica del blob para que un estado previo
// cargue sin migración.
const SnapshotKey = "lux-inventory-v1"
