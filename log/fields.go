package log

import "go.uber.org/zap"

func Topology(name string) zap.Field {
	return zap.String("topology", name)
}

func URL(url string) zap.Field {
	return zap.String("url", url)
}

func RequestID(id string) zap.Field {
	return zap.String("request_id", id)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}
