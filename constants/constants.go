package constants

import "os"

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetIndexDir() string {
	return getEnv("INDEX_PATH", "./out")
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

func GetDynamoDBEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

const MetadataTable = "midi-notes-metadata"

// DynamoDB BatchGetItem limit we stay under
const MaxMetadataBatch = 10

const AllFilesFilename = "allFiles.dat"

// default resolution for exported files without a source time format
const DefaultTicksPerQuarter = 960
