// Tag table transcribed from the EXIF 2.32, TIFF 6.0 and DNG 1.4 tag lists.

package catalog

// standardTags lists the standard tag dictionary in ascending id order.
// A few names appear twice (TIFF/EP and EXIF define the same field under
// different ids); the catalog keeps the name's first position and the
// last id, matching a name-keyed dictionary built from this table.
var standardTags = []TagEntry{
	{Name: "InteropIndex", ID: 0x0001},
	{Name: "ProcessingSoftware", ID: 0x000B},
	{Name: "NewSubfileType", ID: 0x00FE},
	{Name: "SubfileType", ID: 0x00FF},
	{Name: "ImageWidth", ID: 0x0100},
	{Name: "ImageLength", ID: 0x0101},
	{Name: "BitsPerSample", ID: 0x0102},
	{Name: "Compression", ID: 0x0103},
	{Name: "PhotometricInterpretation", ID: 0x0106},
	{Name: "Thresholding", ID: 0x0107},
	{Name: "CellWidth", ID: 0x0108},
	{Name: "CellLength", ID: 0x0109},
	{Name: "FillOrder", ID: 0x010A},
	{Name: "DocumentName", ID: 0x010D},
	{Name: "ImageDescription", ID: 0x010E},
	{Name: "Make", ID: 0x010F},
	{Name: "Model", ID: 0x0110},
	{Name: "StripOffsets", ID: 0x0111},
	{Name: "Orientation", ID: 0x0112},
	{Name: "SamplesPerPixel", ID: 0x0115},
	{Name: "RowsPerStrip", ID: 0x0116},
	{Name: "StripByteCounts", ID: 0x0117},
	{Name: "MinSampleValue", ID: 0x0118},
	{Name: "MaxSampleValue", ID: 0x0119},
	{Name: "XResolution", ID: 0x011A},
	{Name: "YResolution", ID: 0x011B},
	{Name: "PlanarConfiguration", ID: 0x011C},
	{Name: "PageName", ID: 0x011D},
	{Name: "FreeOffsets", ID: 0x0120},
	{Name: "FreeByteCounts", ID: 0x0121},
	{Name: "GrayResponseUnit", ID: 0x0122},
	{Name: "GrayResponseCurve", ID: 0x0123},
	{Name: "T4Options", ID: 0x0124},
	{Name: "T6Options", ID: 0x0125},
	{Name: "ResolutionUnit", ID: 0x0128},
	{Name: "PageNumber", ID: 0x0129},
	{Name: "TransferFunction", ID: 0x012D},
	{Name: "Software", ID: 0x0131},
	{Name: "DateTime", ID: 0x0132},
	{Name: "Artist", ID: 0x013B},
	{Name: "HostComputer", ID: 0x013C},
	{Name: "Predictor", ID: 0x013D},
	{Name: "WhitePoint", ID: 0x013E},
	{Name: "PrimaryChromaticities", ID: 0x013F},
	{Name: "ColorMap", ID: 0x0140},
	{Name: "HalftoneHints", ID: 0x0141},
	{Name: "TileWidth", ID: 0x0142},
	{Name: "TileLength", ID: 0x0143},
	{Name: "TileOffsets", ID: 0x0144},
	{Name: "TileByteCounts", ID: 0x0145},
	{Name: "SubIFDs", ID: 0x014A},
	{Name: "InkSet", ID: 0x014C},
	{Name: "InkNames", ID: 0x014D},
	{Name: "NumberOfInks", ID: 0x014E},
	{Name: "DotRange", ID: 0x0150},
	{Name: "TargetPrinter", ID: 0x0151},
	{Name: "ExtraSamples", ID: 0x0152},
	{Name: "SampleFormat", ID: 0x0153},
	{Name: "SMinSampleValue", ID: 0x0154},
	{Name: "SMaxSampleValue", ID: 0x0155},
	{Name: "TransferRange", ID: 0x0156},
	{Name: "ClipPath", ID: 0x0157},
	{Name: "XClipPathUnits", ID: 0x0158},
	{Name: "YClipPathUnits", ID: 0x0159},
	{Name: "Indexed", ID: 0x015A},
	{Name: "JPEGTables", ID: 0x015B},
	{Name: "OPIProxy", ID: 0x015F},
	{Name: "JPEGProc", ID: 0x0200},
	{Name: "JpegIFOffset", ID: 0x0201},
	{Name: "JpegIFByteCount", ID: 0x0202},
	{Name: "JpegRestartInterval", ID: 0x0203},
	{Name: "JpegLosslessPredictors", ID: 0x0205},
	{Name: "JpegPointTransforms", ID: 0x0206},
	{Name: "JpegQTables", ID: 0x0207},
	{Name: "JpegDCTables", ID: 0x0208},
	{Name: "JpegACTables", ID: 0x0209},
	{Name: "YCbCrCoefficients", ID: 0x0211},
	{Name: "YCbCrSubSampling", ID: 0x0212},
	{Name: "YCbCrPositioning", ID: 0x0213},
	{Name: "ReferenceBlackWhite", ID: 0x0214},
	{Name: "XMLPacket", ID: 0x02BC},
	{Name: "RelatedImageFileFormat", ID: 0x1000},
	{Name: "RelatedImageWidth", ID: 0x1001},
	{Name: "RelatedImageLength", ID: 0x1002},
	{Name: "Rating", ID: 0x4746},
	{Name: "RatingPercent", ID: 0x4749},
	{Name: "ImageID", ID: 0x800D},
	{Name: "CFARepeatPatternDim", ID: 0x828D},
	{Name: "CFAPattern", ID: 0x828E},
	{Name: "BatteryLevel", ID: 0x828F},
	{Name: "Copyright", ID: 0x8298},
	{Name: "ExposureTime", ID: 0x829A},
	{Name: "FNumber", ID: 0x829D},
	{Name: "IPTCNAA", ID: 0x83BB},
	{Name: "ImageResources", ID: 0x8649},
	{Name: "ExifOffset", ID: 0x8769},
	{Name: "InterColorProfile", ID: 0x8773},
	{Name: "ExposureProgram", ID: 0x8822},
	{Name: "SpectralSensitivity", ID: 0x8824},
	{Name: "GPSInfo", ID: 0x8825},
	{Name: "ISOSpeedRatings", ID: 0x8827},
	{Name: "OECF", ID: 0x8828},
	{Name: "Interlace", ID: 0x8829},
	{Name: "TimeZoneOffset", ID: 0x882A},
	{Name: "SelfTimerMode", ID: 0x882B},
	{Name: "SensitivityType", ID: 0x8830},
	{Name: "StandardOutputSensitivity", ID: 0x8831},
	{Name: "RecommendedExposureIndex", ID: 0x8832},
	{Name: "ISOSpeed", ID: 0x8833},
	{Name: "ISOSpeedLatitudeyyy", ID: 0x8834},
	{Name: "ISOSpeedLatitudezzz", ID: 0x8835},
	{Name: "ExifVersion", ID: 0x9000},
	{Name: "DateTimeOriginal", ID: 0x9003},
	{Name: "DateTimeDigitized", ID: 0x9004},
	{Name: "OffsetTime", ID: 0x9010},
	{Name: "OffsetTimeOriginal", ID: 0x9011},
	{Name: "OffsetTimeDigitized", ID: 0x9012},
	{Name: "ComponentsConfiguration", ID: 0x9101},
	{Name: "CompressedBitsPerPixel", ID: 0x9102},
	{Name: "ShutterSpeedValue", ID: 0x9201},
	{Name: "ApertureValue", ID: 0x9202},
	{Name: "BrightnessValue", ID: 0x9203},
	{Name: "ExposureBiasValue", ID: 0x9204},
	{Name: "MaxApertureValue", ID: 0x9205},
	{Name: "SubjectDistance", ID: 0x9206},
	{Name: "MeteringMode", ID: 0x9207},
	{Name: "LightSource", ID: 0x9208},
	{Name: "Flash", ID: 0x9209},
	{Name: "FocalLength", ID: 0x920A},
	{Name: "FlashEnergy", ID: 0x920B},
	{Name: "SpatialFrequencyResponse", ID: 0x920C},
	{Name: "Noise", ID: 0x920D},
	{Name: "ImageNumber", ID: 0x9211},
	{Name: "SecurityClassification", ID: 0x9212},
	{Name: "ImageHistory", ID: 0x9213},
	{Name: "SubjectLocation", ID: 0x9214},
	{Name: "ExposureIndex", ID: 0x9215},
	{Name: "TIFF/EPStandardID", ID: 0x9216},
	{Name: "MakerNote", ID: 0x927C},
	{Name: "UserComment", ID: 0x9286},
	{Name: "SubsecTime", ID: 0x9290},
	{Name: "SubsecTimeOriginal", ID: 0x9291},
	{Name: "SubsecTimeDigitized", ID: 0x9292},
	{Name: "AmbientTemperature", ID: 0x9400},
	{Name: "Humidity", ID: 0x9401},
	{Name: "Pressure", ID: 0x9402},
	{Name: "WaterDepth", ID: 0x9403},
	{Name: "Acceleration", ID: 0x9404},
	{Name: "CameraElevationAngle", ID: 0x9405},
	{Name: "XPTitle", ID: 0x9C9B},
	{Name: "XPComment", ID: 0x9C9C},
	{Name: "XPAuthor", ID: 0x9C9D},
	{Name: "XPKeywords", ID: 0x9C9E},
	{Name: "XPSubject", ID: 0x9C9F},
	{Name: "FlashPixVersion", ID: 0xA000},
	{Name: "ColorSpace", ID: 0xA001},
	{Name: "ExifImageWidth", ID: 0xA002},
	{Name: "ExifImageHeight", ID: 0xA003},
	{Name: "RelatedSoundFile", ID: 0xA004},
	{Name: "ExifInteroperabilityOffset", ID: 0xA005},
	{Name: "FlashEnergy", ID: 0xA20B},
	{Name: "SpatialFrequencyResponse", ID: 0xA20C},
	{Name: "FocalPlaneXResolution", ID: 0xA20E},
	{Name: "FocalPlaneYResolution", ID: 0xA20F},
	{Name: "FocalPlaneResolutionUnit", ID: 0xA210},
	{Name: "SubjectLocation", ID: 0xA214},
	{Name: "ExposureIndex", ID: 0xA215},
	{Name: "SensingMethod", ID: 0xA217},
	{Name: "FileSource", ID: 0xA300},
	{Name: "SceneType", ID: 0xA301},
	{Name: "CFAPattern", ID: 0xA302},
	{Name: "CustomRendered", ID: 0xA401},
	{Name: "ExposureMode", ID: 0xA402},
	{Name: "WhiteBalance", ID: 0xA403},
	{Name: "DigitalZoomRatio", ID: 0xA404},
	{Name: "FocalLengthIn35mmFilm", ID: 0xA405},
	{Name: "SceneCaptureType", ID: 0xA406},
	{Name: "GainControl", ID: 0xA407},
	{Name: "Contrast", ID: 0xA408},
	{Name: "Saturation", ID: 0xA409},
	{Name: "Sharpness", ID: 0xA40A},
	{Name: "DeviceSettingDescription", ID: 0xA40B},
	{Name: "SubjectDistanceRange", ID: 0xA40C},
	{Name: "ImageUniqueID", ID: 0xA420},
	{Name: "CameraOwnerName", ID: 0xA430},
	{Name: "BodySerialNumber", ID: 0xA431},
	{Name: "LensSpecification", ID: 0xA432},
	{Name: "LensMake", ID: 0xA433},
	{Name: "LensModel", ID: 0xA434},
	{Name: "LensSerialNumber", ID: 0xA435},
	{Name: "CompositeImage", ID: 0xA460},
	{Name: "CompositeImageCount", ID: 0xA461},
	{Name: "CompositeImageExposureTimes", ID: 0xA462},
	{Name: "Gamma", ID: 0xA500},
	{Name: "PrintImageMatching", ID: 0xC4A5},
	{Name: "DNGVersion", ID: 0xC612},
	{Name: "DNGBackwardVersion", ID: 0xC613},
	{Name: "UniqueCameraModel", ID: 0xC614},
	{Name: "LocalizedCameraModel", ID: 0xC615},
	{Name: "CFAPlaneColor", ID: 0xC616},
	{Name: "CFALayout", ID: 0xC617},
	{Name: "LinearizationTable", ID: 0xC618},
	{Name: "BlackLevelRepeatDim", ID: 0xC619},
	{Name: "BlackLevel", ID: 0xC61A},
	{Name: "BlackLevelDeltaH", ID: 0xC61B},
	{Name: "BlackLevelDeltaV", ID: 0xC61C},
	{Name: "WhiteLevel", ID: 0xC61D},
	{Name: "DefaultScale", ID: 0xC61E},
	{Name: "DefaultCropOrigin", ID: 0xC61F},
	{Name: "DefaultCropSize", ID: 0xC620},
	{Name: "ColorMatrix1", ID: 0xC621},
	{Name: "ColorMatrix2", ID: 0xC622},
	{Name: "CameraCalibration1", ID: 0xC623},
	{Name: "CameraCalibration2", ID: 0xC624},
	{Name: "ReductionMatrix1", ID: 0xC625},
	{Name: "ReductionMatrix2", ID: 0xC626},
	{Name: "AnalogBalance", ID: 0xC627},
	{Name: "AsShotNeutral", ID: 0xC628},
	{Name: "AsShotWhiteXY", ID: 0xC629},
	{Name: "BaselineExposure", ID: 0xC62A},
	{Name: "BaselineNoise", ID: 0xC62B},
	{Name: "BaselineSharpness", ID: 0xC62C},
	{Name: "BayerGreenSplit", ID: 0xC62D},
	{Name: "LinearResponseLimit", ID: 0xC62E},
	{Name: "CameraSerialNumber", ID: 0xC62F},
	{Name: "LensInfo", ID: 0xC630},
	{Name: "ChromaBlurRadius", ID: 0xC631},
	{Name: "AntiAliasStrength", ID: 0xC632},
	{Name: "ShadowScale", ID: 0xC633},
	{Name: "DNGPrivateData", ID: 0xC634},
	{Name: "MakerNoteSafety", ID: 0xC635},
	{Name: "CalibrationIlluminant1", ID: 0xC65A},
	{Name: "CalibrationIlluminant2", ID: 0xC65B},
	{Name: "BestQualityScale", ID: 0xC65C},
	{Name: "RawDataUniqueID", ID: 0xC65D},
	{Name: "OriginalRawFileName", ID: 0xC68B},
	{Name: "OriginalRawFileData", ID: 0xC68C},
	{Name: "ActiveArea", ID: 0xC68D},
	{Name: "MaskedAreas", ID: 0xC68E},
	{Name: "AsShotICCProfile", ID: 0xC68F},
	{Name: "AsShotPreProfileMatrix", ID: 0xC690},
	{Name: "CurrentICCProfile", ID: 0xC691},
	{Name: "CurrentPreProfileMatrix", ID: 0xC692},
	{Name: "ColorimetricReference", ID: 0xC6BF},
	{Name: "CameraCalibrationSignature", ID: 0xC6F3},
	{Name: "ProfileCalibrationSignature", ID: 0xC6F4},
	{Name: "AsShotProfileName", ID: 0xC6F6},
	{Name: "NoiseReductionApplied", ID: 0xC6F7},
	{Name: "ProfileName", ID: 0xC6F8},
	{Name: "ProfileHueSatMapDims", ID: 0xC6F9},
	{Name: "ProfileHueSatMapData1", ID: 0xC6FA},
	{Name: "ProfileHueSatMapData2", ID: 0xC6FB},
	{Name: "ProfileToneCurve", ID: 0xC6FC},
	{Name: "ProfileEmbedPolicy", ID: 0xC6FD},
	{Name: "ProfileCopyright", ID: 0xC6FE},
	{Name: "ForwardMatrix1", ID: 0xC714},
	{Name: "ForwardMatrix2", ID: 0xC715},
	{Name: "PreviewApplicationName", ID: 0xC716},
	{Name: "PreviewApplicationVersion", ID: 0xC717},
	{Name: "PreviewSettingsName", ID: 0xC718},
	{Name: "PreviewSettingsDigest", ID: 0xC719},
	{Name: "PreviewColorSpace", ID: 0xC71A},
	{Name: "PreviewDateTime", ID: 0xC71B},
	{Name: "RawImageDigest", ID: 0xC71C},
	{Name: "OriginalRawFileDigest", ID: 0xC71D},
	{Name: "SubTileBlockSize", ID: 0xC71E},
	{Name: "RowInterleaveFactor", ID: 0xC71F},
	{Name: "ProfileLookTableDims", ID: 0xC725},
	{Name: "ProfileLookTableData", ID: 0xC726},
	{Name: "OpcodeList1", ID: 0xC740},
	{Name: "OpcodeList2", ID: 0xC741},
	{Name: "OpcodeList3", ID: 0xC74E},
	{Name: "NoiseProfile", ID: 0xC761},
}
