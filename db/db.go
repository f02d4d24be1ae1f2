package db

import (
	"strconv"

	"github.com/Lolirofle/midi-notes-display/constants"
	"github.com/Lolirofle/midi-notes-display/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoDBEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func parseMetadata(item map[string]*dynamodb.AttributeValue) model.MidiMetadata {
	var s model.MidiMetadata
	if v, ok := item["Year"]; ok && v.N != nil {
		year, _ := strconv.ParseUint(*v.N, 10, 32)
		s.Year = uint(year)
	}
	if v, ok := item["Artist"]; ok && v.S != nil {
		s.Artist = *v.S
	}
	if v, ok := item["Release"]; ok && v.S != nil {
		s.Release = *v.S
	}
	if v, ok := item["Title"]; ok && v.S != nil {
		s.Title = *v.S
	}
	return s
}

func GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	if len(filenames) > constants.MaxMetadataBatch {
		return nil, errors.Errorf("Not supposed to pass in more than %v filenames!", constants.MaxMetadataBatch)
	}

	res := make(map[string]model.MidiMetadata)

	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.MetadataTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, errors.Wrap(err, "Error from DynamoDB")
	}

	for _, v := range dbres.Responses[constants.MetadataTable] {
		pk, ok := v["PK"]
		if !ok || pk.S == nil {
			continue
		}
		res[*pk.S] = parseMetadata(v)
	}

	return res, nil
}

// GetAllMidiMetadatas splits filenames into batches DynamoDB accepts.
func GetAllMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)
	for start := 0; start < len(filenames); start += constants.MaxMetadataBatch {
		end := start + constants.MaxMetadataBatch
		if end > len(filenames) {
			end = len(filenames)
		}
		batch, err := GetMidiMetadatas(filenames[start:end])
		if err != nil {
			return nil, err
		}
		for k, v := range batch {
			res[k] = v
		}
	}
	return res, nil
}
