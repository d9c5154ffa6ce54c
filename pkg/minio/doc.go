// Package minio mirrors model artifacts to and from MinIO or any S3-compatible
// object store.
//
// A model lives under one key prefix of one bucket, e.g. models/minilm/config.json.
// The installer uses Put to publish a freshly downloaded artifact and Open/List
// to install from the mirror on hosts without internet access.
//
//	client, err := minio.NewClient(minio.Config{
//		Endpoint:        "minio:9000",
//		AccessKeyID:     "minioadmin",
//		SecretAccessKey: "minioadmin",
//		BucketName:      "models",
//		Prefix:          "minilm",
//	}, log)
//
// Configuration is read from MINIO_ENDPOINT, MINIO_ACCESS_KEY_ID,
// MINIO_SECRET_ACCESS_KEY, MINIO_USE_SSL, MINIO_REGION, MINIO_BUCKET,
// MINIO_MODEL_PREFIX and MINIO_PART_SIZE.
package minio
