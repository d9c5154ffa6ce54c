package model

const (
	ConfigFile               = "config.json"
	SentenceBertConfigFile   = "sentence_bert_config.json"
	ModulesFile              = "modules.json"
	SentenceTransformersFile = "config_sentence_transformers.json"
	PoolingConfigFile        = "1_Pooling/config.json"
	SafetensorsWeightsFile   = "model.safetensors"
	PytorchWeightsFile       = "pytorch_model.bin"
	ManifestFileName         = "install_manifest.json"
)

// SentenceTransformerFiles is the file set that makes up a saved
// sentence-transformers model directory. Paths are relative to the model root.
var SentenceTransformerFiles = []string{
	ModulesFile,
	SentenceTransformersFile,
	SentenceBertConfigFile,
	ConfigFile,
	SafetensorsWeightsFile,
	"tokenizer.json",
	"tokenizer_config.json",
	"special_tokens_map.json",
	"vocab.txt",
	PoolingConfigFile,
}

// weightFiles lists the accepted transformer weight files, in preference order.
var weightFiles = []string{SafetensorsWeightsFile, PytorchWeightsFile}
