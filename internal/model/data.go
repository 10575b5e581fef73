package model

// positions holds the torus knot (p=2, q=3) tube vertices.
var positions = [][3]float32{
	{2.9003, 0.2932, -0.1911},
	{2.6527, 0.2073, -0.1355},
	{2.5500, 0.0000, -0.0006},
	{2.6523, -0.2073, 0.1347},
	{2.8997, -0.2932, 0.1911},
	{3.1473, -0.2073, 0.1355},
	{3.2500, -0.0000, 0.0006},
	{3.1477, 0.2073, -0.1347},
	{2.8999, 0.5406, 0.1923},
	{2.6463, 0.4542, 0.1913},
	{2.5168, 0.2458, 0.2986},
	{2.5871, 0.0374, 0.4515},
	{2.8162, -0.0490, 0.5603},
	{3.0698, 0.0374, 0.5613},
	{3.1993, 0.2458, 0.4539},
	{3.1290, 0.4542, 0.3011},
	{2.8129, 0.7815, 0.5690},
	{2.5666, 0.6938, 0.5107},
	{2.4189, 0.4822, 0.5825},
	{2.4564, 0.2706, 0.7424},
	{2.6571, 0.1829, 0.8967},
	{2.9034, 0.2706, 0.9550},
	{3.0511, 0.4822, 0.8832},
	{3.0136, 0.6938, 0.7233},
	{2.6428, 1.0065, 0.9184},
	{2.4170, 0.9168, 0.8055},
	{2.2628, 0.7000, 0.8369},
	{2.2704, 0.4833, 0.9942},
	{2.4354, 0.3935, 1.1851},
	{2.6612, 0.4833, 1.2979},
	{2.8155, 0.7000, 1.2665},
	{2.8078, 0.9168, 1.1093},
	{2.3984, 1.2070, 1.2215},
	{2.2056, 1.1144, 1.0602},
	{2.0582, 0.8910, 1.0501},
	{2.0426, 0.6675, 1.1970},
	{2.1680, 0.5749, 1.4149},
	{2.3608, 0.6675, 1.5761},
	{2.5082, 0.8910, 1.5863},
	{2.5238, 1.1144, 1.4394},
	{2.0935, 1.3746, 1.4628},
	{1.9442, 1.2788, 1.2621},
	{1.8178, 1.0477, 1.2135},
	{1.7884, 0.8165, 1.3457},
	{1.8733, 0.7207, 1.5810},
	{2.0226, 0.8165, 1.7818},
	{2.1490, 1.0477, 1.8303},
	{2.1783, 1.2788, 1.6981},
	{1.7455, 1.5019, 1.6311},
	{1.6478, 1.4029, 1.4021},
	{1.5560, 1.1641, 1.3229},
	{1.5238, 0.9252, 1.4398},
	{1.5700, 0.8263, 1.6844},
	{1.6677, 0.9252, 1.9134},
	{1.7595, 1.1641, 1.9926},
	{1.7917, 1.4029, 1.8757},
	{1.3739, 1.5822, 1.7207},
	{1.3331, 1.4808, 1.4762},
	{1.2872, 1.2358, 1.3780},
	{1.2631, 0.9908, 1.4837},
	{1.2749, 0.8893, 1.7313},
	{1.3157, 0.9908, 1.9758},
	{1.3616, 1.2358, 2.0740},
	{1.3857, 1.4808, 1.9684},
	{0.9996, 1.6100, 1.7320},
	{1.0174, 1.5075, 1.4852},
	{1.0250, 1.2600, 1.3829},
	{1.0180, 1.0125, 1.4852},
	{1.0004, 0.9100, 1.7321},
	{0.9826, 1.0125, 1.9789},
	{0.9750, 1.2600, 2.0812},
	{0.9820, 1.5075, 1.9789},
	{0.6428, 1.5811, 1.6722},
	{0.7170, 1.4800, 1.4355},
	{0.7801, 1.2358, 1.3453},
	{0.7953, 0.9916, 1.4544},
	{0.7535, 0.8905, 1.6989},
	{0.6794, 0.9916, 1.9356},
	{0.6162, 1.2358, 2.0258},
	{0.6011, 1.4800, 1.9167},
	{0.3212, 1.4944, 1.5557},
	{0.4456, 1.3976, 1.3391},
	{0.5599, 1.1641, 1.2748},
	{0.5973, 0.9305, 1.4005},
	{0.5358, 0.8338, 1.6426},
	{0.4114, 0.9305, 1.8593},
	{0.2971, 1.1641, 1.9236},
	{0.2597, 1.3976, 1.7978},
	{0.0463, 1.3527, 1.4031},
	{0.2114, 1.2634, 1.2120},
	{0.3674, 1.0477, 1.1821},
	{0.4228, 0.8319, 1.3309},
	{0.3453, 0.7426, 1.5712},
	{0.1802, 0.8319, 1.7623},
	{0.0242, 1.0477, 1.7922},
	{-0.0313, 1.2634, 1.6434},
	{-0.1797, 1.1636, 1.2376},
	{0.0150, 1.0838, 1.0719},
	{0.2009, 0.8910, 1.0770},
	{0.2691, 0.6982, 1.2500},
	{0.1797, 0.6183, 1.4896},
	{-0.0150, 0.6982, 1.6553},
	{-0.2009, 0.8910, 1.6502},
	{-0.2691, 1.0838, 1.4772},
	{-0.3644, 0.9379, 1.0813},
	{-0.1517, 0.8682, 0.9343},
	{0.0542, 0.7000, 0.9669},
	{0.1327, 0.5318, 1.1600},
	{0.0377, 0.4621, 1.4006},
	{-0.1751, 0.5318, 1.5477},
	{-0.3810, 0.7000, 1.5151},
	{-0.4594, 0.8682, 1.3219},
	{-0.5226, 0.6886, 0.9514},
	{-0.3029, 0.6282, 0.8106},
	{-0.0829, 0.4822, 0.8561},
	{0.0084, 0.3362, 1.0613},
	{-0.0823, 0.2757, 1.3059},
	{-0.3020, 0.3362, 1.4468},
	{-0.5219, 0.4822, 1.4013},
	{-0.6133, 0.6282, 1.1961},
	{-0.6692, 0.4300, 0.8584},
	{-0.4539, 0.3760, 0.7084},
	{-0.2232, 0.2458, 0.7481},
	{-0.1122, 0.1156, 0.9542},
	{-0.1859, 0.0617, 1.2060},
	{-0.4012, 0.1156, 1.3561},
	{-0.6319, 0.2458, 1.3164},
	{-0.7429, 0.3760, 1.1103},
	{-0.8121, 0.1761, 0.8016},
	{-0.6118, 0.1245, 0.6314},
	{-0.3753, 0.0000, 0.6494},
	{-0.2411, -0.1245, 0.8450},
	{-0.2879, -0.1761, 1.1037},
	{-0.4882, -0.1245, 1.2739},
	{-0.7247, 0.0000, 1.2559},
	{-0.8589, 0.1245, 1.0603},
	{-0.9515, -0.0614, 0.7645},
	{-0.7706, -0.1154, 0.5744},
	{-0.5367, -0.2458, 0.5672},
	{-0.3868, -0.3762, 0.7469},
	{-0.4088, -0.4302, 1.0084},
	{-0.5897, -0.3762, 1.1984},
	{-0.8236, -0.2458, 1.2057},
	{-0.9735, -0.1154, 1.0259},
	{-1.0896, -0.2753, 0.7245},
	{-0.9232, -0.3359, 0.5234},
	{-0.7000, -0.4822, 0.4998},
	{-0.5508, -0.6285, 0.6674},
	{-0.5629, -0.6891, 0.9281},
	{-0.7293, -0.6285, 1.1291},
	{-0.9525, -0.4822, 1.1527},
	{-1.1017, -0.3359, 0.9851},
	{-1.2313, -0.4616, 0.6677},
	{-1.0705, -0.5314, 0.4652},
	{-0.8643, -0.7000, 0.4365},
	{-0.7335, -0.8686, 0.5985},
	{-0.7548, -0.9384, 0.8562},
	{-0.9156, -0.8686, 1.0588},
	{-1.1218, -0.7000, 1.0874},
	{-1.2526, -0.5314, 0.9254},
	{-1.3791, -0.6178, 0.5892},
	{-1.2163, -0.6978, 0.3921},
	{-1.0328, -0.8910, 0.3647},
	{-0.9360, -1.0841, 0.5231},
	{-0.9827, -1.1641, 0.7744},
	{-1.1455, -1.0841, 0.9715},
	{-1.3291, -0.8910, 0.9989},
	{-1.4258, -0.6978, 0.8405},
	{-1.5325, -0.7421, 0.4868},
	{-1.3631, -0.8316, 0.2996},
	{-1.2069, -1.0477, 0.2732},
	{-1.1555, -1.2637, 0.4230},
	{-1.2391, -1.3532, 0.6613},
	{-1.4086, -1.2637, 0.8484},
	{-1.5647, -1.0477, 0.8748},
	{-1.6161, -0.8316, 0.7250},
	{-1.6896, -0.8335, 0.3577},
	{-1.5105, -0.9303, 0.1836},
	{-1.3834, -1.1641, 0.1530},
	{-1.3826, -1.3979, 0.2837},
	{-1.5087, -1.4947, 0.4993},
	{-1.6878, -1.3979, 0.6734},
	{-1.8150, -1.1641, 0.7040},
	{-1.8157, -0.9303, 0.5733},
	{-1.8473, -0.8903, 0.1974},
	{-1.6562, -0.9915, 0.0393},
	{-1.5545, -1.2358, -0.0024},
	{-1.6018, -1.4801, 0.0969},
	{-1.7703, -1.5813, 0.2789},
	{-1.9614, -1.4801, 0.4370},
	{-2.0631, -1.2358, 0.4786},
	{-2.0159, -0.9915, 0.3794},
	{-1.9998, -0.9100, 0.0003},
	{-1.7945, -1.0125, -0.1380},
	{-1.7096, -1.2600, -0.1954},
	{-1.7949, -1.5075, -0.1384},
	{-2.0002, -1.6100, -0.0003},
	{-2.2055, -1.5075, 0.1380},
	{-2.2904, -1.2600, 0.1954},
	{-2.2051, -1.0125, 0.1384},
	{-2.1366, -0.8895, -0.2377},
	{-1.9161, -0.9909, -0.3509},
	{-1.8366, -1.2358, -0.4249},
	{-1.9448, -1.4807, -0.4163},
	{-2.1773, -1.5821, -0.3302},
	{-2.3979, -1.4807, -0.2170},
	{-2.4773, -1.2358, -0.1430},
	{-2.3691, -0.9909, -0.1516},
	{-2.2439, -0.8265, -0.5169},
	{-2.0087, -0.9254, -0.5986},
	{-1.9234, -1.1641, -0.6851},
	{-2.0379, -1.4028, -0.7257},
	{-2.2852, -1.5017, -0.6967},
	{-2.5203, -1.4028, -0.6150},
	{-2.6057, -1.1641, -0.5285},
	{-2.4911, -0.9254, -0.4878},
	{-2.3062, -0.7209, -0.8313},
	{-2.0599, -0.8166, -0.8749},
	{-1.9598, -1.0477, -0.9664},
	{-2.0648, -1.2787, -1.0523},
	{-2.3132, -1.3744, -1.0821},
	{-2.5596, -1.2787, -1.0385},
	{-2.6596, -1.0477, -0.9470},
	{-2.5546, -0.8166, -0.8612},
	{-2.3098, -0.5751, -1.1698},
	{-2.0585, -0.6676, -1.1695},
	{-1.9387, -0.8910, -1.2563},
	{-2.0207, -1.1143, -1.3793},
	{-2.2565, -1.2068, -1.4666},
	{-2.5079, -1.1143, -1.4669},
	{-2.6277, -0.8910, -1.3801},
	{-2.5456, -0.6676, -1.2570},
	{-2.2447, -0.3936, -1.5166},
	{-1.9969, -0.4834, -1.4684},
	{-1.8566, -0.7000, -1.5401},
	{-1.9060, -0.9167, -1.6897},
	{-2.1161, -1.0064, -1.8296},
	{-2.3639, -0.9167, -1.8778},
	{-2.5041, -0.7000, -1.8060},
	{-2.4548, -0.4834, -1.6565},
	{-2.1057, -0.1830, -1.8530},
	{-1.8720, -0.2706, -1.7556},
	{-1.7146, -0.4822, -1.8026},
	{-1.7256, -0.6937, -1.9666},
	{-1.8986, -0.7814, -2.1514},
	{-2.1323, -0.6937, -2.2488},
	{-2.2897, -0.4822, -2.2017},
	{-2.2787, -0.2706, -2.0377},
	{-1.8938, 0.0489, -2.1592},
	{-1.6855, -0.0374, -2.0145},
	{-1.5179, -0.2458, -2.0295},
	{-1.4891, -0.4542, -2.1953},
	{-1.6160, -0.5405, -2.4148},
	{-1.8242, -0.4542, -2.5595},
	{-1.9919, -0.2458, -2.5445},
	{-2.0207, -0.0374, -2.3787},
	{-1.6157, 0.2932, -2.4162},
	{-1.4438, 0.2073, -2.2296},
	{-1.2755, -0.0000, -2.2081},
	{-1.2095, -0.2073, -2.3643},
	{-1.2843, -0.2932, -2.6067},
	{-1.4562, -0.2073, -2.7934},
	{-1.6245, -0.0000, -2.8149},
	{-1.6905, 0.2073, -2.6586},
	{-1.2835, 0.5406, -2.6075},
	{-1.1575, 0.4542, -2.3874},
	{-0.9998, 0.2458, -2.3289},
	{-0.9026, 0.0374, -2.4663},
	{-0.9229, -0.0490, -2.7190},
	{-1.0488, 0.0374, -2.9391},
	{-1.2066, 0.2458, -2.9977},
	{-1.3038, 0.4542, -2.8603},
	{-0.9137, 0.7815, -2.7206},
	{-0.8411, 0.6938, -2.4781},
	{-0.7050, 0.4822, -2.3861},
	{-0.5852, 0.2706, -2.4985},
	{-0.5520, 0.1829, -2.7495},
	{-0.6246, 0.2706, -2.9919},
	{-0.7607, 0.4822, -3.0839},
	{-0.8804, 0.6938, -2.9715},
	{-0.5261, 1.0065, -2.7479},
	{-0.5109, 0.9168, -2.4960},
	{-0.4066, 0.7000, -2.3781},
	{-0.2742, 0.4833, -2.4633},
	{-0.1914, 0.3935, -2.7017},
	{-0.2066, 0.4833, -2.9536},
	{-0.3109, 0.7000, -3.0715},
	{-0.4432, 0.9168, -2.9863},
	{-0.1414, 1.2070, -2.6878},
	{-0.1846, 1.1144, -2.4402},
	{-0.1197, 0.8910, -2.3075},
	{0.0153, 0.6675, -2.3675},
	{0.1414, 0.5749, -2.5850},
	{0.1846, 0.6675, -2.8326},
	{0.1197, 0.8910, -2.9653},
	{-0.0153, 1.1144, -2.9053},
	{0.2200, 1.3746, -2.5444},
	{0.1209, 1.2788, -2.3148},
	{0.1420, 1.0477, -2.1811},
	{0.2712, 0.8165, -2.2217},
	{0.4326, 0.7207, -2.4128},
	{0.5318, 0.8165, -2.6425},
	{0.5106, 1.0477, -2.7762},
	{0.3815, 1.2788, -2.7356},
	{0.5398, 1.5019, -2.3272},
	{0.3903, 1.4029, -2.1281},
	{0.3676, 1.1641, -2.0090},
	{0.4850, 0.9252, -2.0395},
	{0.6737, 0.8263, -2.2019},
	{0.8232, 0.9252, -2.4009},
	{0.8459, 1.1641, -2.5201},
	{0.7285, 1.4029, -2.4895},
	{0.8032, 1.5822, -2.0502},
	{0.6118, 1.4808, -1.8926},
	{0.5497, 1.2358, -1.8038},
	{0.6533, 0.9908, -1.8357},
	{0.8619, 0.8893, -1.9697},
	{1.0533, 0.9908, -2.1273},
	{1.1154, 1.2358, -2.2162},
	{1.0118, 1.4808, -2.1842},
	{1.0002, 1.6100, -1.7317},
	{0.7775, 1.5075, -1.6237},
	{0.6852, 1.2600, -1.5791},
	{0.7773, 1.0125, -1.6242},
	{0.9998, 0.9100, -1.7324},
	{1.2225, 1.0125, -1.8404},
	{1.3148, 1.2600, -1.8850},
	{1.2227, 1.5075, -1.8399},
	{1.1268, 1.5811, -1.3928},
	{0.8847, 1.4800, -1.3387},
	{0.7750, 1.2358, -1.3482},
	{0.8619, 0.9916, -1.4159},
	{1.0945, 0.8905, -1.5020},
	{1.3366, 0.9916, -1.5562},
	{1.4463, 1.2358, -1.5466},
	{1.3594, 1.4800, -1.4789},
	{1.1867, 1.4944, -1.0560},
	{0.9369, 1.3976, -1.0554},
	{0.8240, 1.1641, -1.1223},
	{0.9142, 0.9305, -1.2175},
	{1.1547, 0.8338, -1.2853},
	{1.4045, 0.9305, -1.2860},
	{1.5173, 1.1641, -1.2191},
	{1.4271, 1.3976, -1.1238},
	{1.1919, 1.3527, -0.7416},
	{0.9439, 1.2634, -0.7891},
	{0.8400, 1.0477, -0.9092},
	{0.9412, 0.8319, -1.0316},
	{1.1881, 0.7426, -1.0846},
	{1.4361, 0.8319, -1.0372},
	{1.5400, 1.0477, -0.9171},
	{1.4388, 1.2634, -0.7946},
	{1.1617, 1.1636, -0.4632},
	{0.9208, 1.0838, -0.5489},
	{0.8323, 0.8910, -0.7125},
	{0.9480, 0.6982, -0.8581},
	{1.2002, 0.6183, -0.9004},
	{1.4411, 0.6982, -0.8147},
	{1.5296, 0.8910, -0.6511},
	{1.4138, 1.0838, -0.5055},
	{1.1187, 0.9379, -0.2251},
	{0.8849, 0.8682, -0.3358},
	{0.8102, 0.7000, -0.5304},
	{0.9383, 0.5318, -0.6949},
	{1.1941, 0.4621, -0.7329},
	{1.4279, 0.5318, -0.6222},
	{1.5026, 0.7000, -0.4276},
	{1.3745, 0.8682, -0.2631},
	{1.0853, 0.6886, -0.0232},
	{0.8534, 0.6282, -0.1430},
	{0.7829, 0.4822, -0.3562},
	{0.9149, 0.3362, -0.5379},
	{1.1721, 0.2757, -0.5817},
	{1.4040, 0.3362, -0.4619},
	{1.4745, 0.4822, -0.2486},
	{1.3425, 0.6282, -0.0669},
	{1.0780, 0.4300, 0.1503},
	{0.8405, 0.3760, 0.0389},
	{0.7595, 0.2458, -0.1808},
	{0.8825, 0.1156, -0.3799},
	{1.1374, 0.0617, -0.4420},
	{1.3750, 0.1156, -0.3305},
	{1.4560, 0.2458, -0.1109},
	{1.3330, 0.3760, 0.0883},
	{1.1003, 0.1761, 0.3025},
	{0.8527, 0.1245, 0.2141},
	{0.7500, 0.0000, 0.0003},
	{0.8523, -0.1245, -0.2137},
	{1.0997, -0.1761, -0.3025},
	{1.3473, -0.1245, -0.2141},
	{1.4500, 0.0000, -0.0003},
	{1.3477, 0.1245, 0.2137},
	{1.1378, -0.0614, 0.4418},
	{0.8828, -0.1154, 0.3801},
	{0.7595, -0.2458, 0.1812},
	{0.8403, -0.3762, -0.0384},
	{1.0777, -0.4302, -0.1501},
	{1.3327, -0.3762, -0.0885},
	{1.4559, -0.2458, 0.1105},
	{1.3752, -0.1154, 0.3301},
	{1.1722, -0.2753, 0.5814},
	{0.9149, -0.3359, 0.5378},
	{0.7829, -0.4822, 0.3563},
	{0.8534, -0.6285, 0.1433},
	{1.0852, -0.6891, 0.0235},
	{1.3425, -0.6285, 0.0671},
	{1.4745, -0.4822, 0.2485},
	{1.4040, -0.3359, 0.4615},
	{1.1939, -0.4616, 0.7325},
	{0.9381, -0.5314, 0.6945},
	{0.8102, -0.7000, 0.5302},
	{0.8851, -0.8686, 0.3360},
	{1.1189, -0.9384, 0.2255},
	{1.3747, -0.8686, 0.2635},
	{1.5026, -0.7000, 0.4278},
	{1.4277, -0.5314, 0.6220},
	{1.1998, -0.6178, 0.8998},
	{0.9477, -0.6978, 0.8573},
	{0.8322, -0.8910, 0.7121},
	{0.9210, -1.0841, 0.5491},
	{1.1620, -1.1641, 0.4638},
	{1.4141, -1.0841, 0.5063},
	{1.5296, -0.8910, 0.6516},
	{1.4408, -0.6978, 0.8145},
	{1.1878, -0.7421, 1.0838},
	{0.9410, -0.8316, 1.0306},
	{0.8400, -1.0477, 0.9086},
	{0.9441, -1.2637, 0.7892},
	{1.1922, -1.3532, 0.7424},
	{1.4390, -1.2637, 0.7956},
	{1.5400, -1.0477, 0.9177},
	{1.4359, -0.8316, 1.0370},
	{1.1546, -0.8335, 1.2844},
	{0.9142, -0.9303, 1.2164},
	{0.8241, -1.1641, 1.1216},
	{0.9370, -1.3979, 1.0555},
	{1.1868, -1.4947, 1.0569},
	{1.4271, -1.3979, 1.1250},
	{1.5172, -1.1641, 1.2198},
	{1.4043, -0.9303, 1.2858},
	{1.0946, -0.8903, 1.5011},
	{0.8621, -0.9915, 1.4147},
	{0.7752, -1.2358, 1.3474},
	{0.8848, -1.4801, 1.3387},
	{1.1266, -1.5813, 1.3937},
	{1.3591, -1.4801, 1.4801},
	{1.4461, -1.2358, 1.5474},
	{1.3365, -0.9915, 1.5561},
	{1.0002, -0.9100, 1.7317},
	{0.7778, -1.0125, 1.6231},
	{0.6856, -1.2600, 1.5783},
	{0.7775, -1.5075, 1.6236},
	{0.9998, -1.6100, 1.7324},
	{1.2222, -1.5075, 1.8410},
	{1.3144, -1.2600, 1.8858},
	{1.2225, -1.0125, 1.8405},
	{0.8624, -0.8895, 1.9693},
	{0.6541, -0.9909, 1.8348},
	{0.5503, -1.2358, 1.8030},
	{0.6119, -1.4807, 1.8924},
	{0.8027, -1.5821, 2.0507},
	{1.0110, -1.4807, 2.1851},
	{1.1148, -1.2358, 2.2170},
	{1.0532, -0.9909, 2.1275},
	{0.6743, -0.8265, 2.2017},
	{0.4860, -0.9254, 2.0389},
	{0.3684, -1.1641, 2.0083},
	{0.3905, -1.4028, 2.1278},
	{0.5392, -1.5017, 2.3274},
	{0.7276, -1.4028, 2.4902},
	{0.8452, -1.1641, 2.5208},
	{0.8231, -0.9254, 2.4013},
	{0.4332, -0.7209, 2.4129},
	{0.2722, -0.8166, 2.2213},
	{0.1430, -1.0477, 2.1805},
	{0.1211, -1.2787, 2.3143},
	{0.2195, -1.3744, 2.5443},
	{0.3804, -1.2787, 2.7359},
	{0.5097, -1.0477, 2.7768},
	{0.5315, -0.8166, 2.6430},
	{0.1418, -0.5751, 2.5853},
	{0.0164, -0.6676, 2.3674},
	{-0.1186, -0.8910, 2.3071},
	{-0.1842, -1.1143, 2.4397},
	{-0.1418, -1.2068, 2.6875},
	{-0.0164, -1.1143, 2.9054},
	{0.1186, -0.8910, 2.9657},
	{0.1842, -0.6676, 2.8331},
	{-0.1911, -0.3936, 2.7022},
	{-0.2732, -0.4834, 2.4636},
	{-0.4054, -0.7000, 2.3779},
	{-0.5103, -0.9167, 2.4955},
	{-0.5264, -1.0064, 2.7474},
	{-0.4442, -0.9167, 2.9860},
	{-0.3120, -0.7000, 3.0717},
	{-0.2071, -0.4834, 2.9541},
	{-0.5519, -0.1830, 2.7501},
	{-0.5843, -0.2706, 2.4990},
	{-0.7038, -0.4822, 2.3862},
	{-0.8403, -0.6937, 2.4777},
	{-0.9138, -0.7814, 2.7200},
	{-0.8813, -0.6937, 2.9710},
	{-0.7619, -0.4822, 3.0838},
	{-0.6254, -0.2706, 2.9923},
	{-0.9230, 0.0489, 2.7197},
	{-0.9019, -0.0374, 2.4669},
	{-0.9986, -0.2458, 2.3292},
	{-1.1566, -0.4542, 2.3872},
	{-1.2833, -0.5405, 2.6069},
	{-1.3045, -0.4542, 2.8596},
	{-1.2077, -0.2458, 2.9973},
	{-1.0497, -0.0374, 2.9393},
	{-1.2847, 0.2932, 2.6073},
	{-1.2090, 0.2073, 2.3651},
	{-1.2745, -0.0000, 2.2087},
	{-1.4428, -0.2073, 2.2296},
	{-1.6153, -0.2932, 2.4156},
	{-1.6910, -0.2073, 2.6578},
	{-1.6255, -0.0000, 2.8143},
	{-1.4572, 0.2073, 2.7934},
	{-1.6165, 0.5406, 2.4153},
	{-1.4888, 0.4542, 2.1962},
	{-1.5170, 0.2458, 2.0303},
	{-1.6846, 0.0374, 2.0148},
	{-1.8933, -0.0490, 2.1587},
	{-2.0210, 0.0374, 2.3779},
	{-1.9928, 0.2458, 2.5437},
	{-1.8252, 0.4542, 2.5592},
	{-1.8992, 0.7815, 2.1516},
	{-1.7256, 0.6938, 1.9674},
	{-1.7139, 0.4822, 1.8036},
	{-1.8712, 0.2706, 1.7561},
	{-2.1051, 0.1829, 1.8527},
	{-2.2788, 0.2706, 2.0369},
	{-2.2904, 0.4822, 2.2007},
	{-2.1332, 0.6938, 2.2482},
	{-2.1167, 1.0065, 1.8296},
	{-1.9061, 0.9168, 1.6904},
	{-1.8562, 0.7000, 1.5412},
	{-1.9962, 0.4833, 1.4691},
	{-2.2441, 0.3935, 1.5166},
	{-2.4546, 0.4833, 1.6557},
	{-2.5046, 0.7000, 1.8050},
	{-2.3646, 0.9168, 1.8770},
	{-2.2571, 1.2070, 1.4663},
	{-2.0210, 1.1144, 1.3800},
	{-1.9385, 0.8910, 1.2574},
	{-2.0579, 0.6675, 1.1705},
	{-2.3093, 0.5749, 1.1701},
	{-2.5454, 0.6675, 1.2564},
	{-2.6279, 0.8910, 1.3790},
	{-2.5084, 1.1144, 1.4659},
	{-2.3136, 1.3746, 1.0817},
	{-2.0651, 1.2788, 1.0527},
	{-1.9599, 1.0477, 0.9675},
	{-2.0596, 0.8165, 0.8760},
	{-2.3059, 0.7207, 0.8318},
	{-2.5544, 0.8165, 0.8607},
	{-2.6595, 1.0477, 0.9459},
	{-2.5598, 1.2788, 1.0374},
	{-2.2853, 1.5019, 0.6961},
	{-2.0382, 1.4029, 0.7260},
	{-1.9236, 1.1641, 0.6861},
	{-2.0088, 0.9252, 0.5997},
	{-2.2438, 0.8263, 0.5175},
	{-2.4909, 0.9252, 0.4875},
	{-2.6054, 1.1641, 0.5275},
	{-2.5203, 1.4029, 0.6138},
	{-2.1771, 1.5822, 0.3295},
	{-1.9450, 1.4808, 0.4164},
	{-1.8370, 1.2358, 0.4258},
	{-1.9164, 0.9908, 0.3521},
	{-2.1368, 0.8893, 0.2384},
	{-2.3690, 0.9908, 0.1515},
	{-2.4769, 1.2358, 0.1421},
	{-2.3975, 1.4808, 0.2159},
	{-1.9998, 1.6100, -0.0003},
	{-1.7949, 1.5075, 0.1385},
	{-1.7102, 1.2600, 0.1962},
	{-1.7952, 1.0125, 0.1390},
	{-2.0002, 0.9100, 0.0003},
	{-2.2051, 1.0125, -0.1385},
	{-2.2898, 1.2600, -0.1962},
	{-2.2048, 1.5075, -0.1390},
	{-1.7696, 1.5811, -0.2794},
	{-1.6017, 1.4800, -0.0968},
	{-1.5551, 1.2358, 0.0030},
	{-1.6571, 0.9916, -0.0385},
	{-1.8480, 0.8905, -0.1969},
	{-2.0160, 0.9916, -0.3794},
	{-2.0625, 1.2358, -0.4792},
	{-1.9605, 1.4800, -0.4378},
	{-1.5079, 1.4944, -0.4997},
	{-1.3824, 1.3976, -0.2837},
	{-1.3839, 1.1641, -0.1525},
	{-1.5115, 0.9305, -0.1830},
	{-1.6905, 0.8338, -0.3573},
	{-1.8159, 0.9305, -0.5733},
	{-1.8144, 1.1641, -0.7045},
	{-1.6868, 1.3976, -0.6740},
	{-1.2382, 1.3527, -0.6614},
	{-1.1553, 1.2634, -0.4229},
	{-1.2074, 1.0477, -0.2729},
	{-1.3640, 0.8319, -0.2993},
	{-1.5334, 0.7426, -0.4866},
	{-1.6163, 0.8319, -0.7251},
	{-1.5642, 1.0477, -0.8752},
	{-1.4076, 1.2634, -0.8488},
	{-0.9820, 1.1636, -0.7744},
	{-0.9358, 1.0838, -0.5230},
	{-1.0332, 0.8910, -0.3645},
	{-1.2171, 0.6982, -0.3919},
	{-1.3799, 0.6183, -0.5892},
	{-1.4261, 0.6982, -0.8406},
	{-1.3287, 0.8910, -0.9991},
	{-1.1447, 1.0838, -0.9717},
	{-0.7543, 0.9379, -0.8563},
	{-0.7333, 0.8682, -0.5985},
	{-0.8644, 0.7000, -0.4364},
	{-1.0709, 0.5318, -0.4651},
	{-1.2318, 0.4621, -0.6677},
	{-1.2528, 0.5318, -0.9255},
	{-1.1216, 0.7000, -1.0875},
	{-0.9151, 0.8682, -1.0588},
	{-0.5627, 0.6886, -0.9283},
	{-0.5506, 0.6282, -0.6676},
	{-0.6999, 0.4822, -0.4999},
	{-0.9233, 0.3362, -0.5233},
	{-1.0898, 0.2757, -0.7242},
	{-1.1020, 0.3362, -0.9849},
	{-0.9526, 0.4822, -1.1527},
	{-0.7292, 0.6282, -1.1292},
	{-0.4088, 0.4300, -1.0088},
	{-0.3866, 0.3760, -0.7473},
	{-0.5363, 0.2458, -0.5673},
	{-0.7703, 0.1156, -0.5743},
	{-0.9515, 0.0617, -0.7641},
	{-0.9738, 0.1156, -1.0255},
	{-0.8240, 0.2458, -1.2055},
	{-0.5900, 0.3760, -1.1985},
	{-0.2882, 0.1761, -1.1041},
	{-0.2409, 0.1245, -0.8455},
	{-0.3747, 0.0000, -0.6497},
	{-0.6112, -0.1245, -0.6313},
	{-0.8118, -0.1761, -0.8012},
	{-0.8591, -0.1245, -1.0597},
	{-0.7253, 0.0000, -1.2556},
	{-0.4888, 0.1245, -1.2740},
	{-0.1863, -0.0614, -1.2063},
	{-0.1122, -0.1154, -0.9546},
	{-0.2228, -0.2458, -0.7484},
	{-0.4534, -0.3762, -0.7085},
	{-0.6689, -0.4302, -0.8582},
	{-0.7430, -0.3762, -1.1099},
	{-0.6323, -0.2458, -1.3161},
	{-0.4017, -0.1154, -1.3560},
	{-0.0826, -0.2753, -1.3058},
	{0.0083, -0.3359, -1.0612},
	{-0.0828, -0.4822, -0.8562},
	{-0.3026, -0.6285, -0.8107},
	{-0.5223, -0.6891, -0.9516},
	{-0.6132, -0.6285, -1.1962},
	{-0.5220, -0.4822, -1.4012},
	{-0.3023, -0.3359, -1.4467},
	{0.0374, -0.4616, -1.4002},
	{0.1324, -0.5314, -1.1596},
	{0.0541, -0.7000, -0.9667},
	{-0.1516, -0.8686, -0.9345},
	{-0.3641, -0.9384, -1.0818},
	{-0.4591, -0.8686, -1.3223},
	{-0.3808, -0.7000, -1.5152},
	{-0.1752, -0.5314, -1.5475},
	{0.1793, -0.6178, -1.4890},
	{0.2686, -0.6978, -1.2494},
	{0.2005, -0.8910, -1.0768},
	{0.0150, -1.0841, -1.0721},
	{-0.1793, -1.1641, -1.2382},
	{-0.2686, -1.0841, -1.4778},
	{-0.2005, -0.8910, -1.6505},
	{-0.0150, -0.6978, -1.6551},
	{0.3447, -0.7421, -1.5706},
	{0.4221, -0.8316, -1.3302},
	{0.3668, -1.0477, -1.1818},
	{0.2114, -1.2637, -1.2122},
	{0.0468, -1.3532, -1.4037},
	{-0.0305, -1.2637, -1.6441},
	{0.0247, -1.0477, -1.7925},
	{0.1801, -0.8316, -1.7621},
	{0.5350, -0.8335, -1.6421},
	{0.5963, -0.9303, -1.3999},
	{0.5592, -1.1641, -1.2745},
	{0.4456, -1.3979, -1.3393},
	{0.3219, -1.4947, -1.5563},
	{0.2607, -1.3979, -1.7984},
	{0.2978, -1.1641, -1.9238},
	{0.4114, -0.9303, -1.8591},
	{0.7527, -0.8903, -1.6985},
	{0.7941, -0.9915, -1.4540},
	{0.7793, -1.2358, -1.3451},
	{0.7170, -1.4801, -1.4356},
	{0.6437, -1.5813, -1.6726},
	{0.6023, -1.4801, -1.9171},
	{0.6171, -1.2358, -2.0260},
	{0.6794, -0.9915, -1.9355},
	{0.9996, -0.9100, -1.7320},
	{1.0167, -1.0125, -1.4851},
	{1.0241, -1.2600, -1.3829},
	{1.0173, -1.5075, -1.4852},
	{1.0004, -1.6100, -1.7321},
	{0.9833, -1.5075, -1.9790},
	{0.9759, -1.2600, -2.0812},
	{0.9827, -1.0125, -1.9789},
	{1.2742, -0.8895, -1.7315},
	{1.2619, -0.9909, -1.4839},
	{1.2863, -1.2358, -1.3781},
	{1.3329, -1.4807, -1.4761},
	{1.3746, -1.5821, -1.7205},
	{1.3869, -1.4807, -1.9681},
	{1.3625, -1.2358, -2.0739},
	{1.3159, -0.9909, -1.9759},
	{1.5696, -0.8265, -1.6848},
	{1.5227, -0.9254, -1.4403},
	{1.5550, -1.1641, -1.3232},
	{1.6475, -1.4028, -1.4020},
	{1.7459, -1.5017, -1.6307},
	{1.7928, -1.4028, -1.8752},
	{1.7605, -1.1641, -1.9923},
	{1.6680, -0.9254, -1.9135},
	{1.8731, -0.7209, -1.5816},
	{1.7876, -0.8166, -1.3464},
	{1.8169, -1.0477, -1.2141},
	{1.9437, -1.2787, -1.2620},
	{2.0937, -1.3744, -1.4622},
	{2.1792, -1.2787, -1.6974},
	{2.1499, -1.0477, -1.8298},
	{2.0231, -0.8166, -1.7818},
	{2.1680, -0.5751, -1.4155},
	{2.0420, -0.6676, -1.1979},
	{2.0573, -0.8910, -1.0508},
	{2.2049, -1.1143, -1.0603},
	{2.3984, -1.2068, -1.2209},
	{2.5243, -1.1143, -1.4385},
	{2.5090, -0.8910, -1.5856},
	{2.3614, -0.6676, -1.5761},
	{2.4357, -0.3936, -1.1856},
	{2.2701, -0.4834, -0.9952},
	{2.2621, -0.7000, -0.8378},
	{2.4163, -0.9167, -0.8058},
	{2.6425, -1.0064, -0.9178},
	{2.8081, -0.9167, -1.1083},
	{2.8162, -0.7000, -1.2656},
	{2.6619, -0.4834, -1.2977},
	{2.6576, -0.1830, -0.8971},
	{2.4564, -0.2706, -0.7435},
	{2.4184, -0.4822, -0.5836},
	{2.5659, -0.6937, -0.5111},
	{2.8125, -0.7814, -0.5686},
	{3.0136, -0.6937, -0.7222},
	{3.0516, -0.4822, -0.8821},
	{2.9041, -0.2706, -0.9545},
	{2.8168, 0.0489, -0.5605},
	{2.5874, -0.0374, -0.4524},
	{2.5165, -0.2458, -0.2998},
	{2.6457, -0.4542, -0.1919},
	{2.8993, -0.5405, -0.1920},
	{3.1287, -0.4542, -0.3001},
	{3.1996, -0.2458, -0.4528},
	{3.0704, -0.0374, -0.5606},
}

// cells holds the tube triangles as vertex index triples.
var cells = [][3]uint16{
	{0, 8, 1}, {1, 8, 9}, {1, 9, 2}, {2, 9, 10},
	{2, 10, 3}, {3, 10, 11}, {3, 11, 4}, {4, 11, 12},
	{4, 12, 5}, {5, 12, 13}, {5, 13, 6}, {6, 13, 14},
	{6, 14, 7}, {7, 14, 15}, {7, 15, 0}, {0, 15, 8},
	{8, 16, 9}, {9, 16, 17}, {9, 17, 10}, {10, 17, 18},
	{10, 18, 11}, {11, 18, 19}, {11, 19, 12}, {12, 19, 20},
	{12, 20, 13}, {13, 20, 21}, {13, 21, 14}, {14, 21, 22},
	{14, 22, 15}, {15, 22, 23}, {15, 23, 8}, {8, 23, 16},
	{16, 24, 17}, {17, 24, 25}, {17, 25, 18}, {18, 25, 26},
	{18, 26, 19}, {19, 26, 27}, {19, 27, 20}, {20, 27, 28},
	{20, 28, 21}, {21, 28, 29}, {21, 29, 22}, {22, 29, 30},
	{22, 30, 23}, {23, 30, 31}, {23, 31, 16}, {16, 31, 24},
	{24, 32, 25}, {25, 32, 33}, {25, 33, 26}, {26, 33, 34},
	{26, 34, 27}, {27, 34, 35}, {27, 35, 28}, {28, 35, 36},
	{28, 36, 29}, {29, 36, 37}, {29, 37, 30}, {30, 37, 38},
	{30, 38, 31}, {31, 38, 39}, {31, 39, 24}, {24, 39, 32},
	{32, 40, 33}, {33, 40, 41}, {33, 41, 34}, {34, 41, 42},
	{34, 42, 35}, {35, 42, 43}, {35, 43, 36}, {36, 43, 44},
	{36, 44, 37}, {37, 44, 45}, {37, 45, 38}, {38, 45, 46},
	{38, 46, 39}, {39, 46, 47}, {39, 47, 32}, {32, 47, 40},
	{40, 48, 41}, {41, 48, 49}, {41, 49, 42}, {42, 49, 50},
	{42, 50, 43}, {43, 50, 51}, {43, 51, 44}, {44, 51, 52},
	{44, 52, 45}, {45, 52, 53}, {45, 53, 46}, {46, 53, 54},
	{46, 54, 47}, {47, 54, 55}, {47, 55, 40}, {40, 55, 48},
	{48, 56, 49}, {49, 56, 57}, {49, 57, 50}, {50, 57, 58},
	{50, 58, 51}, {51, 58, 59}, {51, 59, 52}, {52, 59, 60},
	{52, 60, 53}, {53, 60, 61}, {53, 61, 54}, {54, 61, 62},
	{54, 62, 55}, {55, 62, 63}, {55, 63, 48}, {48, 63, 56},
	{56, 64, 57}, {57, 64, 65}, {57, 65, 58}, {58, 65, 66},
	{58, 66, 59}, {59, 66, 67}, {59, 67, 60}, {60, 67, 68},
	{60, 68, 61}, {61, 68, 69}, {61, 69, 62}, {62, 69, 70},
	{62, 70, 63}, {63, 70, 71}, {63, 71, 56}, {56, 71, 64},
	{64, 72, 65}, {65, 72, 73}, {65, 73, 66}, {66, 73, 74},
	{66, 74, 67}, {67, 74, 75}, {67, 75, 68}, {68, 75, 76},
	{68, 76, 69}, {69, 76, 77}, {69, 77, 70}, {70, 77, 78},
	{70, 78, 71}, {71, 78, 79}, {71, 79, 64}, {64, 79, 72},
	{72, 80, 73}, {73, 80, 81}, {73, 81, 74}, {74, 81, 82},
	{74, 82, 75}, {75, 82, 83}, {75, 83, 76}, {76, 83, 84},
	{76, 84, 77}, {77, 84, 85}, {77, 85, 78}, {78, 85, 86},
	{78, 86, 79}, {79, 86, 87}, {79, 87, 72}, {72, 87, 80},
	{80, 88, 81}, {81, 88, 89}, {81, 89, 82}, {82, 89, 90},
	{82, 90, 83}, {83, 90, 91}, {83, 91, 84}, {84, 91, 92},
	{84, 92, 85}, {85, 92, 93}, {85, 93, 86}, {86, 93, 94},
	{86, 94, 87}, {87, 94, 95}, {87, 95, 80}, {80, 95, 88},
	{88, 96, 89}, {89, 96, 97}, {89, 97, 90}, {90, 97, 98},
	{90, 98, 91}, {91, 98, 99}, {91, 99, 92}, {92, 99, 100},
	{92, 100, 93}, {93, 100, 101}, {93, 101, 94}, {94, 101, 102},
	{94, 102, 95}, {95, 102, 103}, {95, 103, 88}, {88, 103, 96},
	{96, 104, 97}, {97, 104, 105}, {97, 105, 98}, {98, 105, 106},
	{98, 106, 99}, {99, 106, 107}, {99, 107, 100}, {100, 107, 108},
	{100, 108, 101}, {101, 108, 109}, {101, 109, 102}, {102, 109, 110},
	{102, 110, 103}, {103, 110, 111}, {103, 111, 96}, {96, 111, 104},
	{104, 112, 105}, {105, 112, 113}, {105, 113, 106}, {106, 113, 114},
	{106, 114, 107}, {107, 114, 115}, {107, 115, 108}, {108, 115, 116},
	{108, 116, 109}, {109, 116, 117}, {109, 117, 110}, {110, 117, 118},
	{110, 118, 111}, {111, 118, 119}, {111, 119, 104}, {104, 119, 112},
	{112, 120, 113}, {113, 120, 121}, {113, 121, 114}, {114, 121, 122},
	{114, 122, 115}, {115, 122, 123}, {115, 123, 116}, {116, 123, 124},
	{116, 124, 117}, {117, 124, 125}, {117, 125, 118}, {118, 125, 126},
	{118, 126, 119}, {119, 126, 127}, {119, 127, 112}, {112, 127, 120},
	{120, 128, 121}, {121, 128, 129}, {121, 129, 122}, {122, 129, 130},
	{122, 130, 123}, {123, 130, 131}, {123, 131, 124}, {124, 131, 132},
	{124, 132, 125}, {125, 132, 133}, {125, 133, 126}, {126, 133, 134},
	{126, 134, 127}, {127, 134, 135}, {127, 135, 120}, {120, 135, 128},
	{128, 136, 129}, {129, 136, 137}, {129, 137, 130}, {130, 137, 138},
	{130, 138, 131}, {131, 138, 139}, {131, 139, 132}, {132, 139, 140},
	{132, 140, 133}, {133, 140, 141}, {133, 141, 134}, {134, 141, 142},
	{134, 142, 135}, {135, 142, 143}, {135, 143, 128}, {128, 143, 136},
	{136, 144, 137}, {137, 144, 145}, {137, 145, 138}, {138, 145, 146},
	{138, 146, 139}, {139, 146, 147}, {139, 147, 140}, {140, 147, 148},
	{140, 148, 141}, {141, 148, 149}, {141, 149, 142}, {142, 149, 150},
	{142, 150, 143}, {143, 150, 151}, {143, 151, 136}, {136, 151, 144},
	{144, 152, 145}, {145, 152, 153}, {145, 153, 146}, {146, 153, 154},
	{146, 154, 147}, {147, 154, 155}, {147, 155, 148}, {148, 155, 156},
	{148, 156, 149}, {149, 156, 157}, {149, 157, 150}, {150, 157, 158},
	{150, 158, 151}, {151, 158, 159}, {151, 159, 144}, {144, 159, 152},
	{152, 160, 153}, {153, 160, 161}, {153, 161, 154}, {154, 161, 162},
	{154, 162, 155}, {155, 162, 163}, {155, 163, 156}, {156, 163, 164},
	{156, 164, 157}, {157, 164, 165}, {157, 165, 158}, {158, 165, 166},
	{158, 166, 159}, {159, 166, 167}, {159, 167, 152}, {152, 167, 160},
	{160, 168, 161}, {161, 168, 169}, {161, 169, 162}, {162, 169, 170},
	{162, 170, 163}, {163, 170, 171}, {163, 171, 164}, {164, 171, 172},
	{164, 172, 165}, {165, 172, 173}, {165, 173, 166}, {166, 173, 174},
	{166, 174, 167}, {167, 174, 175}, {167, 175, 160}, {160, 175, 168},
	{168, 176, 169}, {169, 176, 177}, {169, 177, 170}, {170, 177, 178},
	{170, 178, 171}, {171, 178, 179}, {171, 179, 172}, {172, 179, 180},
	{172, 180, 173}, {173, 180, 181}, {173, 181, 174}, {174, 181, 182},
	{174, 182, 175}, {175, 182, 183}, {175, 183, 168}, {168, 183, 176},
	{176, 184, 177}, {177, 184, 185}, {177, 185, 178}, {178, 185, 186},
	{178, 186, 179}, {179, 186, 187}, {179, 187, 180}, {180, 187, 188},
	{180, 188, 181}, {181, 188, 189}, {181, 189, 182}, {182, 189, 190},
	{182, 190, 183}, {183, 190, 191}, {183, 191, 176}, {176, 191, 184},
	{184, 192, 185}, {185, 192, 193}, {185, 193, 186}, {186, 193, 194},
	{186, 194, 187}, {187, 194, 195}, {187, 195, 188}, {188, 195, 196},
	{188, 196, 189}, {189, 196, 197}, {189, 197, 190}, {190, 197, 198},
	{190, 198, 191}, {191, 198, 199}, {191, 199, 184}, {184, 199, 192},
	{192, 200, 193}, {193, 200, 201}, {193, 201, 194}, {194, 201, 202},
	{194, 202, 195}, {195, 202, 203}, {195, 203, 196}, {196, 203, 204},
	{196, 204, 197}, {197, 204, 205}, {197, 205, 198}, {198, 205, 206},
	{198, 206, 199}, {199, 206, 207}, {199, 207, 192}, {192, 207, 200},
	{200, 208, 201}, {201, 208, 209}, {201, 209, 202}, {202, 209, 210},
	{202, 210, 203}, {203, 210, 211}, {203, 211, 204}, {204, 211, 212},
	{204, 212, 205}, {205, 212, 213}, {205, 213, 206}, {206, 213, 214},
	{206, 214, 207}, {207, 214, 215}, {207, 215, 200}, {200, 215, 208},
	{208, 216, 209}, {209, 216, 217}, {209, 217, 210}, {210, 217, 218},
	{210, 218, 211}, {211, 218, 219}, {211, 219, 212}, {212, 219, 220},
	{212, 220, 213}, {213, 220, 221}, {213, 221, 214}, {214, 221, 222},
	{214, 222, 215}, {215, 222, 223}, {215, 223, 208}, {208, 223, 216},
	{216, 224, 217}, {217, 224, 225}, {217, 225, 218}, {218, 225, 226},
	{218, 226, 219}, {219, 226, 227}, {219, 227, 220}, {220, 227, 228},
	{220, 228, 221}, {221, 228, 229}, {221, 229, 222}, {222, 229, 230},
	{222, 230, 223}, {223, 230, 231}, {223, 231, 216}, {216, 231, 224},
	{224, 232, 225}, {225, 232, 233}, {225, 233, 226}, {226, 233, 234},
	{226, 234, 227}, {227, 234, 235}, {227, 235, 228}, {228, 235, 236},
	{228, 236, 229}, {229, 236, 237}, {229, 237, 230}, {230, 237, 238},
	{230, 238, 231}, {231, 238, 239}, {231, 239, 224}, {224, 239, 232},
	{232, 240, 233}, {233, 240, 241}, {233, 241, 234}, {234, 241, 242},
	{234, 242, 235}, {235, 242, 243}, {235, 243, 236}, {236, 243, 244},
	{236, 244, 237}, {237, 244, 245}, {237, 245, 238}, {238, 245, 246},
	{238, 246, 239}, {239, 246, 247}, {239, 247, 232}, {232, 247, 240},
	{240, 248, 241}, {241, 248, 249}, {241, 249, 242}, {242, 249, 250},
	{242, 250, 243}, {243, 250, 251}, {243, 251, 244}, {244, 251, 252},
	{244, 252, 245}, {245, 252, 253}, {245, 253, 246}, {246, 253, 254},
	{246, 254, 247}, {247, 254, 255}, {247, 255, 240}, {240, 255, 248},
	{248, 256, 249}, {249, 256, 257}, {249, 257, 250}, {250, 257, 258},
	{250, 258, 251}, {251, 258, 259}, {251, 259, 252}, {252, 259, 260},
	{252, 260, 253}, {253, 260, 261}, {253, 261, 254}, {254, 261, 262},
	{254, 262, 255}, {255, 262, 263}, {255, 263, 248}, {248, 263, 256},
	{256, 264, 257}, {257, 264, 265}, {257, 265, 258}, {258, 265, 266},
	{258, 266, 259}, {259, 266, 267}, {259, 267, 260}, {260, 267, 268},
	{260, 268, 261}, {261, 268, 269}, {261, 269, 262}, {262, 269, 270},
	{262, 270, 263}, {263, 270, 271}, {263, 271, 256}, {256, 271, 264},
	{264, 272, 265}, {265, 272, 273}, {265, 273, 266}, {266, 273, 274},
	{266, 274, 267}, {267, 274, 275}, {267, 275, 268}, {268, 275, 276},
	{268, 276, 269}, {269, 276, 277}, {269, 277, 270}, {270, 277, 278},
	{270, 278, 271}, {271, 278, 279}, {271, 279, 264}, {264, 279, 272},
	{272, 280, 273}, {273, 280, 281}, {273, 281, 274}, {274, 281, 282},
	{274, 282, 275}, {275, 282, 283}, {275, 283, 276}, {276, 283, 284},
	{276, 284, 277}, {277, 284, 285}, {277, 285, 278}, {278, 285, 286},
	{278, 286, 279}, {279, 286, 287}, {279, 287, 272}, {272, 287, 280},
	{280, 288, 281}, {281, 288, 289}, {281, 289, 282}, {282, 289, 290},
	{282, 290, 283}, {283, 290, 291}, {283, 291, 284}, {284, 291, 292},
	{284, 292, 285}, {285, 292, 293}, {285, 293, 286}, {286, 293, 294},
	{286, 294, 287}, {287, 294, 295}, {287, 295, 280}, {280, 295, 288},
	{288, 296, 289}, {289, 296, 297}, {289, 297, 290}, {290, 297, 298},
	{290, 298, 291}, {291, 298, 299}, {291, 299, 292}, {292, 299, 300},
	{292, 300, 293}, {293, 300, 301}, {293, 301, 294}, {294, 301, 302},
	{294, 302, 295}, {295, 302, 303}, {295, 303, 288}, {288, 303, 296},
	{296, 304, 297}, {297, 304, 305}, {297, 305, 298}, {298, 305, 306},
	{298, 306, 299}, {299, 306, 307}, {299, 307, 300}, {300, 307, 308},
	{300, 308, 301}, {301, 308, 309}, {301, 309, 302}, {302, 309, 310},
	{302, 310, 303}, {303, 310, 311}, {303, 311, 296}, {296, 311, 304},
	{304, 312, 305}, {305, 312, 313}, {305, 313, 306}, {306, 313, 314},
	{306, 314, 307}, {307, 314, 315}, {307, 315, 308}, {308, 315, 316},
	{308, 316, 309}, {309, 316, 317}, {309, 317, 310}, {310, 317, 318},
	{310, 318, 311}, {311, 318, 319}, {311, 319, 304}, {304, 319, 312},
	{312, 320, 313}, {313, 320, 321}, {313, 321, 314}, {314, 321, 322},
	{314, 322, 315}, {315, 322, 323}, {315, 323, 316}, {316, 323, 324},
	{316, 324, 317}, {317, 324, 325}, {317, 325, 318}, {318, 325, 326},
	{318, 326, 319}, {319, 326, 327}, {319, 327, 312}, {312, 327, 320},
	{320, 328, 321}, {321, 328, 329}, {321, 329, 322}, {322, 329, 330},
	{322, 330, 323}, {323, 330, 331}, {323, 331, 324}, {324, 331, 332},
	{324, 332, 325}, {325, 332, 333}, {325, 333, 326}, {326, 333, 334},
	{326, 334, 327}, {327, 334, 335}, {327, 335, 320}, {320, 335, 328},
	{328, 336, 329}, {329, 336, 337}, {329, 337, 330}, {330, 337, 338},
	{330, 338, 331}, {331, 338, 339}, {331, 339, 332}, {332, 339, 340},
	{332, 340, 333}, {333, 340, 341}, {333, 341, 334}, {334, 341, 342},
	{334, 342, 335}, {335, 342, 343}, {335, 343, 328}, {328, 343, 336},
	{336, 344, 337}, {337, 344, 345}, {337, 345, 338}, {338, 345, 346},
	{338, 346, 339}, {339, 346, 347}, {339, 347, 340}, {340, 347, 348},
	{340, 348, 341}, {341, 348, 349}, {341, 349, 342}, {342, 349, 350},
	{342, 350, 343}, {343, 350, 351}, {343, 351, 336}, {336, 351, 344},
	{344, 352, 345}, {345, 352, 353}, {345, 353, 346}, {346, 353, 354},
	{346, 354, 347}, {347, 354, 355}, {347, 355, 348}, {348, 355, 356},
	{348, 356, 349}, {349, 356, 357}, {349, 357, 350}, {350, 357, 358},
	{350, 358, 351}, {351, 358, 359}, {351, 359, 344}, {344, 359, 352},
	{352, 360, 353}, {353, 360, 361}, {353, 361, 354}, {354, 361, 362},
	{354, 362, 355}, {355, 362, 363}, {355, 363, 356}, {356, 363, 364},
	{356, 364, 357}, {357, 364, 365}, {357, 365, 358}, {358, 365, 366},
	{358, 366, 359}, {359, 366, 367}, {359, 367, 352}, {352, 367, 360},
	{360, 368, 361}, {361, 368, 369}, {361, 369, 362}, {362, 369, 370},
	{362, 370, 363}, {363, 370, 371}, {363, 371, 364}, {364, 371, 372},
	{364, 372, 365}, {365, 372, 373}, {365, 373, 366}, {366, 373, 374},
	{366, 374, 367}, {367, 374, 375}, {367, 375, 360}, {360, 375, 368},
	{368, 376, 369}, {369, 376, 377}, {369, 377, 370}, {370, 377, 378},
	{370, 378, 371}, {371, 378, 379}, {371, 379, 372}, {372, 379, 380},
	{372, 380, 373}, {373, 380, 381}, {373, 381, 374}, {374, 381, 382},
	{374, 382, 375}, {375, 382, 383}, {375, 383, 368}, {368, 383, 376},
	{376, 384, 377}, {377, 384, 385}, {377, 385, 378}, {378, 385, 386},
	{378, 386, 379}, {379, 386, 387}, {379, 387, 380}, {380, 387, 388},
	{380, 388, 381}, {381, 388, 389}, {381, 389, 382}, {382, 389, 390},
	{382, 390, 383}, {383, 390, 391}, {383, 391, 376}, {376, 391, 384},
	{384, 392, 385}, {385, 392, 393}, {385, 393, 386}, {386, 393, 394},
	{386, 394, 387}, {387, 394, 395}, {387, 395, 388}, {388, 395, 396},
	{388, 396, 389}, {389, 396, 397}, {389, 397, 390}, {390, 397, 398},
	{390, 398, 391}, {391, 398, 399}, {391, 399, 384}, {384, 399, 392},
	{392, 400, 393}, {393, 400, 401}, {393, 401, 394}, {394, 401, 402},
	{394, 402, 395}, {395, 402, 403}, {395, 403, 396}, {396, 403, 404},
	{396, 404, 397}, {397, 404, 405}, {397, 405, 398}, {398, 405, 406},
	{398, 406, 399}, {399, 406, 407}, {399, 407, 392}, {392, 407, 400},
	{400, 408, 401}, {401, 408, 409}, {401, 409, 402}, {402, 409, 410},
	{402, 410, 403}, {403, 410, 411}, {403, 411, 404}, {404, 411, 412},
	{404, 412, 405}, {405, 412, 413}, {405, 413, 406}, {406, 413, 414},
	{406, 414, 407}, {407, 414, 415}, {407, 415, 400}, {400, 415, 408},
	{408, 416, 409}, {409, 416, 417}, {409, 417, 410}, {410, 417, 418},
	{410, 418, 411}, {411, 418, 419}, {411, 419, 412}, {412, 419, 420},
	{412, 420, 413}, {413, 420, 421}, {413, 421, 414}, {414, 421, 422},
	{414, 422, 415}, {415, 422, 423}, {415, 423, 408}, {408, 423, 416},
	{416, 424, 417}, {417, 424, 425}, {417, 425, 418}, {418, 425, 426},
	{418, 426, 419}, {419, 426, 427}, {419, 427, 420}, {420, 427, 428},
	{420, 428, 421}, {421, 428, 429}, {421, 429, 422}, {422, 429, 430},
	{422, 430, 423}, {423, 430, 431}, {423, 431, 416}, {416, 431, 424},
	{424, 432, 425}, {425, 432, 433}, {425, 433, 426}, {426, 433, 434},
	{426, 434, 427}, {427, 434, 435}, {427, 435, 428}, {428, 435, 436},
	{428, 436, 429}, {429, 436, 437}, {429, 437, 430}, {430, 437, 438},
	{430, 438, 431}, {431, 438, 439}, {431, 439, 424}, {424, 439, 432},
	{432, 440, 433}, {433, 440, 441}, {433, 441, 434}, {434, 441, 442},
	{434, 442, 435}, {435, 442, 443}, {435, 443, 436}, {436, 443, 444},
	{436, 444, 437}, {437, 444, 445}, {437, 445, 438}, {438, 445, 446},
	{438, 446, 439}, {439, 446, 447}, {439, 447, 432}, {432, 447, 440},
	{440, 448, 441}, {441, 448, 449}, {441, 449, 442}, {442, 449, 450},
	{442, 450, 443}, {443, 450, 451}, {443, 451, 444}, {444, 451, 452},
	{444, 452, 445}, {445, 452, 453}, {445, 453, 446}, {446, 453, 454},
	{446, 454, 447}, {447, 454, 455}, {447, 455, 440}, {440, 455, 448},
	{448, 456, 449}, {449, 456, 457}, {449, 457, 450}, {450, 457, 458},
	{450, 458, 451}, {451, 458, 459}, {451, 459, 452}, {452, 459, 460},
	{452, 460, 453}, {453, 460, 461}, {453, 461, 454}, {454, 461, 462},
	{454, 462, 455}, {455, 462, 463}, {455, 463, 448}, {448, 463, 456},
	{456, 464, 457}, {457, 464, 465}, {457, 465, 458}, {458, 465, 466},
	{458, 466, 459}, {459, 466, 467}, {459, 467, 460}, {460, 467, 468},
	{460, 468, 461}, {461, 468, 469}, {461, 469, 462}, {462, 469, 470},
	{462, 470, 463}, {463, 470, 471}, {463, 471, 456}, {456, 471, 464},
	{464, 472, 465}, {465, 472, 473}, {465, 473, 466}, {466, 473, 474},
	{466, 474, 467}, {467, 474, 475}, {467, 475, 468}, {468, 475, 476},
	{468, 476, 469}, {469, 476, 477}, {469, 477, 470}, {470, 477, 478},
	{470, 478, 471}, {471, 478, 479}, {471, 479, 464}, {464, 479, 472},
	{472, 480, 473}, {473, 480, 481}, {473, 481, 474}, {474, 481, 482},
	{474, 482, 475}, {475, 482, 483}, {475, 483, 476}, {476, 483, 484},
	{476, 484, 477}, {477, 484, 485}, {477, 485, 478}, {478, 485, 486},
	{478, 486, 479}, {479, 486, 487}, {479, 487, 472}, {472, 487, 480},
	{480, 488, 481}, {481, 488, 489}, {481, 489, 482}, {482, 489, 490},
	{482, 490, 483}, {483, 490, 491}, {483, 491, 484}, {484, 491, 492},
	{484, 492, 485}, {485, 492, 493}, {485, 493, 486}, {486, 493, 494},
	{486, 494, 487}, {487, 494, 495}, {487, 495, 480}, {480, 495, 488},
	{488, 496, 489}, {489, 496, 497}, {489, 497, 490}, {490, 497, 498},
	{490, 498, 491}, {491, 498, 499}, {491, 499, 492}, {492, 499, 500},
	{492, 500, 493}, {493, 500, 501}, {493, 501, 494}, {494, 501, 502},
	{494, 502, 495}, {495, 502, 503}, {495, 503, 488}, {488, 503, 496},
	{496, 504, 497}, {497, 504, 505}, {497, 505, 498}, {498, 505, 506},
	{498, 506, 499}, {499, 506, 507}, {499, 507, 500}, {500, 507, 508},
	{500, 508, 501}, {501, 508, 509}, {501, 509, 502}, {502, 509, 510},
	{502, 510, 503}, {503, 510, 511}, {503, 511, 496}, {496, 511, 504},
	{504, 512, 505}, {505, 512, 513}, {505, 513, 506}, {506, 513, 514},
	{506, 514, 507}, {507, 514, 515}, {507, 515, 508}, {508, 515, 516},
	{508, 516, 509}, {509, 516, 517}, {509, 517, 510}, {510, 517, 518},
	{510, 518, 511}, {511, 518, 519}, {511, 519, 504}, {504, 519, 512},
	{512, 520, 513}, {513, 520, 521}, {513, 521, 514}, {514, 521, 522},
	{514, 522, 515}, {515, 522, 523}, {515, 523, 516}, {516, 523, 524},
	{516, 524, 517}, {517, 524, 525}, {517, 525, 518}, {518, 525, 526},
	{518, 526, 519}, {519, 526, 527}, {519, 527, 512}, {512, 527, 520},
	{520, 528, 521}, {521, 528, 529}, {521, 529, 522}, {522, 529, 530},
	{522, 530, 523}, {523, 530, 531}, {523, 531, 524}, {524, 531, 532},
	{524, 532, 525}, {525, 532, 533}, {525, 533, 526}, {526, 533, 534},
	{526, 534, 527}, {527, 534, 535}, {527, 535, 520}, {520, 535, 528},
	{528, 536, 529}, {529, 536, 537}, {529, 537, 530}, {530, 537, 538},
	{530, 538, 531}, {531, 538, 539}, {531, 539, 532}, {532, 539, 540},
	{532, 540, 533}, {533, 540, 541}, {533, 541, 534}, {534, 541, 542},
	{534, 542, 535}, {535, 542, 543}, {535, 543, 528}, {528, 543, 536},
	{536, 544, 537}, {537, 544, 545}, {537, 545, 538}, {538, 545, 546},
	{538, 546, 539}, {539, 546, 547}, {539, 547, 540}, {540, 547, 548},
	{540, 548, 541}, {541, 548, 549}, {541, 549, 542}, {542, 549, 550},
	{542, 550, 543}, {543, 550, 551}, {543, 551, 536}, {536, 551, 544},
	{544, 552, 545}, {545, 552, 553}, {545, 553, 546}, {546, 553, 554},
	{546, 554, 547}, {547, 554, 555}, {547, 555, 548}, {548, 555, 556},
	{548, 556, 549}, {549, 556, 557}, {549, 557, 550}, {550, 557, 558},
	{550, 558, 551}, {551, 558, 559}, {551, 559, 544}, {544, 559, 552},
	{552, 560, 553}, {553, 560, 561}, {553, 561, 554}, {554, 561, 562},
	{554, 562, 555}, {555, 562, 563}, {555, 563, 556}, {556, 563, 564},
	{556, 564, 557}, {557, 564, 565}, {557, 565, 558}, {558, 565, 566},
	{558, 566, 559}, {559, 566, 567}, {559, 567, 552}, {552, 567, 560},
	{560, 568, 561}, {561, 568, 569}, {561, 569, 562}, {562, 569, 570},
	{562, 570, 563}, {563, 570, 571}, {563, 571, 564}, {564, 571, 572},
	{564, 572, 565}, {565, 572, 573}, {565, 573, 566}, {566, 573, 574},
	{566, 574, 567}, {567, 574, 575}, {567, 575, 560}, {560, 575, 568},
	{568, 576, 569}, {569, 576, 577}, {569, 577, 570}, {570, 577, 578},
	{570, 578, 571}, {571, 578, 579}, {571, 579, 572}, {572, 579, 580},
	{572, 580, 573}, {573, 580, 581}, {573, 581, 574}, {574, 581, 582},
	{574, 582, 575}, {575, 582, 583}, {575, 583, 568}, {568, 583, 576},
	{576, 584, 577}, {577, 584, 585}, {577, 585, 578}, {578, 585, 586},
	{578, 586, 579}, {579, 586, 587}, {579, 587, 580}, {580, 587, 588},
	{580, 588, 581}, {581, 588, 589}, {581, 589, 582}, {582, 589, 590},
	{582, 590, 583}, {583, 590, 591}, {583, 591, 576}, {576, 591, 584},
	{584, 592, 585}, {585, 592, 593}, {585, 593, 586}, {586, 593, 594},
	{586, 594, 587}, {587, 594, 595}, {587, 595, 588}, {588, 595, 596},
	{588, 596, 589}, {589, 596, 597}, {589, 597, 590}, {590, 597, 598},
	{590, 598, 591}, {591, 598, 599}, {591, 599, 584}, {584, 599, 592},
	{592, 600, 593}, {593, 600, 601}, {593, 601, 594}, {594, 601, 602},
	{594, 602, 595}, {595, 602, 603}, {595, 603, 596}, {596, 603, 604},
	{596, 604, 597}, {597, 604, 605}, {597, 605, 598}, {598, 605, 606},
	{598, 606, 599}, {599, 606, 607}, {599, 607, 592}, {592, 607, 600},
	{600, 608, 601}, {601, 608, 609}, {601, 609, 602}, {602, 609, 610},
	{602, 610, 603}, {603, 610, 611}, {603, 611, 604}, {604, 611, 612},
	{604, 612, 605}, {605, 612, 613}, {605, 613, 606}, {606, 613, 614},
	{606, 614, 607}, {607, 614, 615}, {607, 615, 600}, {600, 615, 608},
	{608, 616, 609}, {609, 616, 617}, {609, 617, 610}, {610, 617, 618},
	{610, 618, 611}, {611, 618, 619}, {611, 619, 612}, {612, 619, 620},
	{612, 620, 613}, {613, 620, 621}, {613, 621, 614}, {614, 621, 622},
	{614, 622, 615}, {615, 622, 623}, {615, 623, 608}, {608, 623, 616},
	{616, 624, 617}, {617, 624, 625}, {617, 625, 618}, {618, 625, 626},
	{618, 626, 619}, {619, 626, 627}, {619, 627, 620}, {620, 627, 628},
	{620, 628, 621}, {621, 628, 629}, {621, 629, 622}, {622, 629, 630},
	{622, 630, 623}, {623, 630, 631}, {623, 631, 616}, {616, 631, 624},
	{624, 632, 625}, {625, 632, 633}, {625, 633, 626}, {626, 633, 634},
	{626, 634, 627}, {627, 634, 635}, {627, 635, 628}, {628, 635, 636},
	{628, 636, 629}, {629, 636, 637}, {629, 637, 630}, {630, 637, 638},
	{630, 638, 631}, {631, 638, 639}, {631, 639, 624}, {624, 639, 632},
	{632, 640, 633}, {633, 640, 641}, {633, 641, 634}, {634, 641, 642},
	{634, 642, 635}, {635, 642, 643}, {635, 643, 636}, {636, 643, 644},
	{636, 644, 637}, {637, 644, 645}, {637, 645, 638}, {638, 645, 646},
	{638, 646, 639}, {639, 646, 647}, {639, 647, 632}, {632, 647, 640},
	{640, 648, 641}, {641, 648, 649}, {641, 649, 642}, {642, 649, 650},
	{642, 650, 643}, {643, 650, 651}, {643, 651, 644}, {644, 651, 652},
	{644, 652, 645}, {645, 652, 653}, {645, 653, 646}, {646, 653, 654},
	{646, 654, 647}, {647, 654, 655}, {647, 655, 640}, {640, 655, 648},
	{648, 656, 649}, {649, 656, 657}, {649, 657, 650}, {650, 657, 658},
	{650, 658, 651}, {651, 658, 659}, {651, 659, 652}, {652, 659, 660},
	{652, 660, 653}, {653, 660, 661}, {653, 661, 654}, {654, 661, 662},
	{654, 662, 655}, {655, 662, 663}, {655, 663, 648}, {648, 663, 656},
	{656, 664, 657}, {657, 664, 665}, {657, 665, 658}, {658, 665, 666},
	{658, 666, 659}, {659, 666, 667}, {659, 667, 660}, {660, 667, 668},
	{660, 668, 661}, {661, 668, 669}, {661, 669, 662}, {662, 669, 670},
	{662, 670, 663}, {663, 670, 671}, {663, 671, 656}, {656, 671, 664},
	{664, 672, 665}, {665, 672, 673}, {665, 673, 666}, {666, 673, 674},
	{666, 674, 667}, {667, 674, 675}, {667, 675, 668}, {668, 675, 676},
	{668, 676, 669}, {669, 676, 677}, {669, 677, 670}, {670, 677, 678},
	{670, 678, 671}, {671, 678, 679}, {671, 679, 664}, {664, 679, 672},
	{672, 680, 673}, {673, 680, 681}, {673, 681, 674}, {674, 681, 682},
	{674, 682, 675}, {675, 682, 683}, {675, 683, 676}, {676, 683, 684},
	{676, 684, 677}, {677, 684, 685}, {677, 685, 678}, {678, 685, 686},
	{678, 686, 679}, {679, 686, 687}, {679, 687, 672}, {672, 687, 680},
	{680, 688, 681}, {681, 688, 689}, {681, 689, 682}, {682, 689, 690},
	{682, 690, 683}, {683, 690, 691}, {683, 691, 684}, {684, 691, 692},
	{684, 692, 685}, {685, 692, 693}, {685, 693, 686}, {686, 693, 694},
	{686, 694, 687}, {687, 694, 695}, {687, 695, 680}, {680, 695, 688},
	{688, 696, 689}, {689, 696, 697}, {689, 697, 690}, {690, 697, 698},
	{690, 698, 691}, {691, 698, 699}, {691, 699, 692}, {692, 699, 700},
	{692, 700, 693}, {693, 700, 701}, {693, 701, 694}, {694, 701, 702},
	{694, 702, 695}, {695, 702, 703}, {695, 703, 688}, {688, 703, 696},
	{696, 704, 697}, {697, 704, 705}, {697, 705, 698}, {698, 705, 706},
	{698, 706, 699}, {699, 706, 707}, {699, 707, 700}, {700, 707, 708},
	{700, 708, 701}, {701, 708, 709}, {701, 709, 702}, {702, 709, 710},
	{702, 710, 703}, {703, 710, 711}, {703, 711, 696}, {696, 711, 704},
	{704, 712, 705}, {705, 712, 713}, {705, 713, 706}, {706, 713, 714},
	{706, 714, 707}, {707, 714, 715}, {707, 715, 708}, {708, 715, 716},
	{708, 716, 709}, {709, 716, 717}, {709, 717, 710}, {710, 717, 718},
	{710, 718, 711}, {711, 718, 719}, {711, 719, 704}, {704, 719, 712},
	{712, 720, 713}, {713, 720, 721}, {713, 721, 714}, {714, 721, 722},
	{714, 722, 715}, {715, 722, 723}, {715, 723, 716}, {716, 723, 724},
	{716, 724, 717}, {717, 724, 725}, {717, 725, 718}, {718, 725, 726},
	{718, 726, 719}, {719, 726, 727}, {719, 727, 712}, {712, 727, 720},
	{720, 728, 721}, {721, 728, 729}, {721, 729, 722}, {722, 729, 730},
	{722, 730, 723}, {723, 730, 731}, {723, 731, 724}, {724, 731, 732},
	{724, 732, 725}, {725, 732, 733}, {725, 733, 726}, {726, 733, 734},
	{726, 734, 727}, {727, 734, 735}, {727, 735, 720}, {720, 735, 728},
	{728, 736, 729}, {729, 736, 737}, {729, 737, 730}, {730, 737, 738},
	{730, 738, 731}, {731, 738, 739}, {731, 739, 732}, {732, 739, 740},
	{732, 740, 733}, {733, 740, 741}, {733, 741, 734}, {734, 741, 742},
	{734, 742, 735}, {735, 742, 743}, {735, 743, 728}, {728, 743, 736},
	{736, 744, 737}, {737, 744, 745}, {737, 745, 738}, {738, 745, 746},
	{738, 746, 739}, {739, 746, 747}, {739, 747, 740}, {740, 747, 748},
	{740, 748, 741}, {741, 748, 749}, {741, 749, 742}, {742, 749, 750},
	{742, 750, 743}, {743, 750, 751}, {743, 751, 736}, {736, 751, 744},
	{744, 752, 745}, {745, 752, 753}, {745, 753, 746}, {746, 753, 754},
	{746, 754, 747}, {747, 754, 755}, {747, 755, 748}, {748, 755, 756},
	{748, 756, 749}, {749, 756, 757}, {749, 757, 750}, {750, 757, 758},
	{750, 758, 751}, {751, 758, 759}, {751, 759, 744}, {744, 759, 752},
	{752, 760, 753}, {753, 760, 761}, {753, 761, 754}, {754, 761, 762},
	{754, 762, 755}, {755, 762, 763}, {755, 763, 756}, {756, 763, 764},
	{756, 764, 757}, {757, 764, 765}, {757, 765, 758}, {758, 765, 766},
	{758, 766, 759}, {759, 766, 767}, {759, 767, 752}, {752, 767, 760},
	{760, 0, 761}, {761, 0, 1}, {761, 1, 762}, {762, 1, 2},
	{762, 2, 763}, {763, 2, 3}, {763, 3, 764}, {764, 3, 4},
	{764, 4, 765}, {765, 4, 5}, {765, 5, 766}, {766, 5, 6},
	{766, 6, 767}, {767, 6, 7}, {767, 7, 760}, {760, 7, 0},
}
