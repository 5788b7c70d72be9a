package app

// User facing messages. The uploader UI is in Spanish.
const (
	MessageNoData         = "No se proporcionaron datos"
	MessageInserted       = "Datos insertados exitosamente"
	MessageInsertFailed   = "Error al insertar datos en la base de datos"
	MessageParsed         = `Archivo procesado. Revisa la vista previa y presiona "Subir datos" para continuar.`
	MessageParseFailed    = "No se pudo procesar el archivo Excel"
	MessageHistoryFailed  = "No se pudo leer el historial de cargas"
	MessageInvalidPayload = "El cuerpo de la solicitud no es JSON válido"
)
